package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Human-readable reasons carried by validation results. These are response
// payload text, not errors: a looked-up-but-unusable key is still a 200 with
// valid=false.
const (
	ReasonKeyNotFound = "key not found"
	ReasonKeyInactive = "key is inactive"
	ReasonKeyExpired  = "key has expired"
	ReasonKeyValid    = "key is valid"
)
