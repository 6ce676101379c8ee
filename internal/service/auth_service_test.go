package service

import (
	"errors"
	"testing"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"
	"go-dairy-ops/pkg/jwt"
)

func TestLoginReturnsRoleProfile(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)

	result, err := env.auth.Login("alice@test.local", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("no token issued")
	}
	if result.ProfileID != seller.ID.String() {
		t.Errorf("profile_id = %s, want %s", result.ProfileID, seller.ID)
	}
	if result.User.Role != model.RoleSeller {
		t.Errorf("role = %s, want SELLER", result.User.Role)
	}

	claims, err := jwt.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.ProfileID != seller.ID.String() {
		t.Errorf("claims profile_id = %s, want %s", claims.ProfileID, seller.ID)
	}
	if _, err := env.auth.ValidateSession(claims); err != nil {
		t.Errorf("fresh session rejected: %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	env.newSeller(t, "alice", location.ID)

	if _, err := env.auth.Login("alice@test.local", "wrong"); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("wrong password: err = %v, want authorization error", err)
	}
	if _, err := env.auth.Login("nobody@test.local", "secret123"); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("unknown email: err = %v, want authorization error", err)
	}
}

func TestSecondLoginSupersedesFirst(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	env.newSeller(t, "alice", location.ID)

	first, err := env.auth.Login("alice@test.local", "secret123")
	if err != nil {
		t.Fatalf("first Login: %v", err)
	}
	if _, err := env.auth.Login("alice@test.local", "secret123"); err != nil {
		t.Fatalf("second Login: %v", err)
	}

	claims, _ := jwt.ValidateToken(first.Token)
	if _, err := env.auth.ValidateSession(claims); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("stale session: err = %v, want authorization error", err)
	}
}

func TestInactivityExpiresSession(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)

	result, err := env.auth.Login("alice@test.local", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, _ := jwt.ValidateToken(result.Token)

	// Backdate last activity past the window
	stale := time.Now().Add(-InactivityTimeout - time.Minute)
	if err := env.db.Model(&model.User{}).Where("id = ?", seller.UserID).Update("last_seen_at", stale).Error; err != nil {
		t.Fatalf("backdate last_seen_at: %v", err)
	}

	if _, err := env.auth.ValidateSession(claims); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("idle session: err = %v, want authorization error", err)
	}

	// A heartbeat would have kept it alive
	if err := env.auth.Heartbeat(seller.UserID); err != nil {
		t.Fatalf("Heartbeat: %v", err)
	}
	if _, err := env.auth.ValidateSession(claims); err != nil {
		t.Errorf("session after heartbeat: %v", err)
	}
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)

	if _, err := env.master.SetSellerActive(seller.ID, false); err != nil {
		t.Fatalf("SetSellerActive: %v", err)
	}

	if _, err := env.auth.Login("alice@test.local", "secret123"); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("deactivated login: err = %v, want authorization error", err)
	}
}

func TestResetPasswordRotatesSession(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	env.newSeller(t, "alice", location.ID)

	result, err := env.auth.Login("alice@test.local", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := env.auth.ResetPassword("alice@test.local", "newsecret"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := env.auth.Login("alice@test.local", "secret123"); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("old password still works: err = %v", err)
	}
	if _, err := env.auth.Login("alice@test.local", "newsecret"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// Pre-reset token is dead
	claims, _ := jwt.ValidateToken(result.Token)
	if _, err := env.auth.ValidateSession(claims); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("pre-reset session: err = %v, want authorization error", err)
	}

	if err := env.auth.ResetPassword("alice@test.local", "short"); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("short password: err = %v, want validation error", err)
	}
	if err := env.auth.ResetPassword("nobody@test.local", "newsecret"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown email: err = %v, want not found", err)
	}
}
