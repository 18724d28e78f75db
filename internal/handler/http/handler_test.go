// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock KeyService
// ─────────────────────────────────────────────

// mockKeyService implements service.KeyService for unit tests.
// Each method field can be overridden per test case.
type mockKeyService struct {
	issueKeyFn         func(ctx context.Context, user models.User) (models.User, error)
	loginByKeyFn       func(ctx context.Context, apiKey string) (models.User, error)
	validateFn         func(ctx context.Context, apiKey string) (models.ValidationResult, error)
	validateDetailedFn func(ctx context.Context, apiKey string) (models.DetailedValidationResult, error)
	listUsersFn        func(ctx context.Context) ([]models.DashboardUser, error)
	deleteUserFn       func(ctx context.Context, userID int64) error
	setKeyActiveFn     func(ctx context.Context, apiKey string, active bool) error
}

func (m *mockKeyService) IssueKey(ctx context.Context, user models.User) (models.User, error) {
	return m.issueKeyFn(ctx, user)
}

func (m *mockKeyService) LoginByKey(ctx context.Context, apiKey string) (models.User, error) {
	return m.loginByKeyFn(ctx, apiKey)
}

func (m *mockKeyService) Validate(ctx context.Context, apiKey string) (models.ValidationResult, error) {
	return m.validateFn(ctx, apiKey)
}

func (m *mockKeyService) ValidateDetailed(ctx context.Context, apiKey string) (models.DetailedValidationResult, error) {
	return m.validateDetailedFn(ctx, apiKey)
}

func (m *mockKeyService) ListUsers(ctx context.Context) ([]models.DashboardUser, error) {
	return m.listUsersFn(ctx)
}

func (m *mockKeyService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

func (m *mockKeyService) SetKeyActive(ctx context.Context, apiKey string, active bool) error {
	return m.setKeyActiveFn(ctx, apiKey, active)
}

// ─────────────────────────────────────────────
// Mock AdminService
// ─────────────────────────────────────────────

// mockAdminService implements service.AdminService for unit tests.
type mockAdminService struct {
	registerFn    func(ctx context.Context, admin models.Admin) (models.Admin, error)
	loginFn       func(ctx context.Context, admin models.Admin) (models.Admin, error)
	createTokenFn func(ctx context.Context, admin models.Admin) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAdminService) Register(ctx context.Context, admin models.Admin) (models.Admin, error) {
	return m.registerFn(ctx, admin)
}

func (m *mockAdminService) Login(ctx context.Context, admin models.Admin) (models.Admin, error) {
	return m.loginFn(ctx, admin)
}

func (m *mockAdminService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	return m.createTokenFn(ctx, admin)
}

func (m *mockAdminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, keys service.KeyService, admins service.AdminService) *Handler {
	t.Helper()
	svcs := &service.Services{
		KeyService:   keys,
		AdminService: admins,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string, adminID int64) models.Token {
	return models.Token{SignedString: signed, AdminID: adminID}
}
