// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dashboard tests go through the full router so that routing, URL
// parameters, and the admin session middleware are exercised together.

// authorizedAdminService accepts any bearer token and resolves it to admin 1.
func authorizedAdminService() *mockAdminService {
	return &mockAdminService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return stubToken("signed.jwt.token", 1), nil
		},
	}
}

func newDashboardRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer signed.jwt.token")
	return req
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	keys := &mockKeyService{
		listUsersFn: func(_ context.Context) ([]models.DashboardUser, error) {
			return []models.DashboardUser{
				{UserID: 2, FirstName: "Bob", APIKey: "sk-bb", RegisteredAt: now, Active: false, Status: models.StatusInactive},
				{UserID: 1, FirstName: "Ann", APIKey: "sk-aa", RegisteredAt: now.Add(-time.Hour), Active: true, Status: models.StatusActive},
			}, nil
		},
	}

	h := newTestHandler(t, keys, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodGet, "/api/users", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.DashboardUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, models.StatusInactive, list[0].Status)
	assert.Equal(t, "Ann", list[1].FirstName)
}

func TestListUsers_StorageError(t *testing.T) {
	keys := &mockKeyService{
		listUsersFn: func(_ context.Context) ([]models.DashboardUser, error) {
			return nil, fmt.Errorf("dashboard listing failed: %w", store.ErrExecutingQuery)
		},
	}

	h := newTestHandler(t, keys, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodGet, "/api/users", ""))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// deleteUser
// ─────────────────────────────────────────────

func TestDeleteUser_Handler_Success(t *testing.T) {
	var deletedID int64
	keys := &mockKeyService{
		deleteUserFn: func(ctx context.Context, userID int64) error {
			// the middleware must have stored the admin identity
			adminID, ok := utils.GetAdminIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(1), adminID)

			deletedID = userID
			return nil
		},
	}

	h := newTestHandler(t, keys, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodDelete, "/api/users/42", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), deletedID)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestDeleteUser_Handler_NotFound(t *testing.T) {
	keys := &mockKeyService{
		deleteUserFn: func(_ context.Context, _ int64) error {
			return fmt.Errorf("user deletion failed: %w", store.ErrUserNotFound)
		},
	}

	h := newTestHandler(t, keys, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodDelete, "/api/users/42", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_Handler_InvalidID(t *testing.T) {
	h := newTestHandler(t, &mockKeyService{}, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodDelete, "/api/users/not-a-number", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// setKeyActive
// ─────────────────────────────────────────────

func TestSetKeyActive_Handler_Success(t *testing.T) {
	var gotKey string
	var gotActive bool
	keys := &mockKeyService{
		setKeyActiveFn: func(_ context.Context, apiKey string, active bool) error {
			gotKey = apiKey
			gotActive = active
			return nil
		},
	}

	h := newTestHandler(t, keys, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodPatch, "/api/keys/sk-aa/active", `{"active":false}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sk-aa", gotKey)
	assert.False(t, gotActive)
}

func TestSetKeyActive_Handler_KeyNotFound(t *testing.T) {
	keys := &mockKeyService{
		setKeyActiveFn: func(_ context.Context, _ string, _ bool) error {
			return fmt.Errorf("key toggle failed: %w", store.ErrKeyNotFound)
		},
	}

	h := newTestHandler(t, keys, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodPatch, "/api/keys/sk-missing/active", `{"active":true}`))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetKeyActive_Handler_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockKeyService{}, authorizedAdminService())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newDashboardRequest(t, http.MethodPatch, "/api/keys/sk-aa/active", "{"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
