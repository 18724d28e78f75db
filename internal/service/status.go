package service

import (
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

// ResolveStatus derives the read-time classification of a key record.
//
// Precedence, first match wins:
//  1. active=false          → Inactive
//  2. expiry set and passed → Expired
//  3. otherwise             → Active
//
// Inactive deliberately wins over Expired: a switched-off key reads as
// switched off regardless of its expiry. A nil expiry never expires.
func ResolveStatus(key models.APIKey, now time.Time) models.KeyStatus {
	if !key.Active {
		return models.StatusInactive
	}
	if key.ExpiresAt != nil && now.After(*key.ExpiresAt) {
		return models.StatusExpired
	}
	return models.StatusActive
}

// statusReason maps a resolved status to the human-readable reason used in
// validation responses.
func statusReason(status models.KeyStatus) string {
	switch status {
	case models.StatusInactive:
		return ReasonKeyInactive
	case models.StatusExpired:
		return ReasonKeyExpired
	default:
		return ReasonKeyValid
	}
}
