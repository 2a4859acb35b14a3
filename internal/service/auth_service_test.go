package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/service"
)

func strPtr(s string) *string { return &s }

func TestAuthService_Login(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"admin", "admin", service.DemoPassword, nil},
		{"any known user", "sarah_dev", service.DemoPassword, nil},
		{"username is trimmed", " reader ", service.DemoPassword, nil},
		{"wrong password", "admin", "hunter2", errs.ErrInvalidCredentials},
		{"unknown user", "nobody", service.DemoPassword, errs.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := h.services.Auth.Login(ctx, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			if sess.Token == "" || !sess.Authenticated() {
				t.Errorf("expected an authenticated session, got %+v", sess)
			}
			stored, _ := h.sessions.Get(ctx, sess.Token)
			if stored == nil {
				t.Error("session should be stored")
			}
		})
	}
}

func TestAuthService_LoginHonoursContext(t *testing.T) {
	h := newTestHarnessWithConfig(t, testConfig(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := h.services.Auth.Login(ctx, "admin", service.DemoPassword)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("login should not wait out the delay after cancellation")
	}
}

func TestAuthService_LoginDelay(t *testing.T) {
	h := newTestHarnessWithConfig(t, testConfig(20*time.Millisecond))

	start := time.Now()
	if _, err := h.services.Auth.Login(context.Background(), "admin", service.DemoPassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("expected simulated delay, took %v", elapsed)
	}
}

func TestAuthService_LogoutAndCurrent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	sess := h.signIn(t, "admin")

	user, err := h.services.Auth.Current(ctx, sess)
	if err != nil || user.Username != "admin" {
		t.Fatalf("Current = %+v, %v", user, err)
	}
	if _, err := h.services.Auth.Current(ctx, nil); !errors.Is(err, errs.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	if err := h.services.Auth.Logout(ctx, sess); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if stored, _ := h.sessions.Get(ctx, sess.Token); stored != nil {
		t.Error("session should be gone after logout")
	}
	if err := h.services.Auth.Logout(ctx, nil); err != nil {
		t.Errorf("logout without session should be a no-op, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	sess := h.signIn(t, "admin")

	updated, err := h.services.Auth.UpdateProfile(ctx, sess, &models.ProfileUpdate{
		Name: strPtr("Johnny Smith"),
		Bio:  strPtr("Writes Go"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Johnny Smith" || updated.Bio != "Writes Go" || updated.Email != "admin@techblog.com" {
		t.Errorf("unexpected user: %+v", updated)
	}

	stored, _ := h.userRepo.GetByID(ctx, 1)
	if stored.Name != "Johnny Smith" {
		t.Errorf("user store not updated: %+v", stored)
	}
	storedSess, _ := h.sessions.Get(ctx, sess.Token)
	if storedSess.User.Name != "Johnny Smith" {
		t.Errorf("session not updated: %+v", storedSess.User)
	}
}

func TestAuthService_UpdateProfileRejected(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	if _, err := h.services.Auth.UpdateProfile(ctx, nil, &models.ProfileUpdate{}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	sess := h.signIn(t, "admin")
	_, err := h.services.Auth.UpdateProfile(ctx, sess, &models.ProfileUpdate{Email: strPtr("not-an-email")})
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if h.userRepo.UpdateCalls != 0 {
		t.Error("invalid updates must not reach the store")
	}

	h.userRepo.UpdateError = errors.New("write failed")
	if _, err := h.services.Auth.UpdateProfile(ctx, sess, &models.ProfileUpdate{Name: strPtr("X")}); err == nil {
		t.Error("expected store error")
	}
}
