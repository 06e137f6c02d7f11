package service

import (
	"errors"
	"testing"
	"time"

	"github.com/blogicum-next/internal/repository"
)

func TestEnsureDefaultAdmin(t *testing.T) {
	svc := newBlogServices(t)
	auth := NewAuthService(svc.cfg, repository.NewAdminRepository(svc.db))

	admin, err := auth.EnsureDefaultAdmin("", "")
	if err != nil {
		t.Fatalf("ensure default admin failed: %v", err)
	}
	if admin == nil || admin.Username != DefaultAdminUsername || !admin.IsSuper {
		t.Fatalf("unexpected default admin: %+v", admin)
	}
	if err := auth.VerifyPassword(admin.PasswordHash, DefaultAdminPassword); err != nil {
		t.Fatalf("default password should be set: %v", err)
	}

	again, err := auth.EnsureDefaultAdmin("", "other-pass1")
	if err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}
	if again != nil {
		t.Fatalf("existing admins should not trigger a new account")
	}
}

func TestAdminChangePasswordRevokesTokens(t *testing.T) {
	svc := newBlogServices(t)
	auth := NewAuthService(svc.cfg, repository.NewAdminRepository(svc.db))
	if _, err := auth.CreateAdmin("editor", "secret123"); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	admin, token, _, err := auth.Login("editor", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if admin.LastLoginAt == nil {
		t.Fatalf("login should record last_login_at")
	}
	if _, err := auth.Authenticate(token); err != nil {
		t.Fatalf("fresh token should be valid: %v", err)
	}

	if err := auth.ChangePassword(admin.ID, "wrong-pass1", "newsecret1"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password should fail, got %v", err)
	}
	auth.now = func() time.Time { return time.Now().Add(time.Second) }
	if err := auth.ChangePassword(admin.ID, "secret123", "newsecret1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, err := auth.Authenticate(token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("old token should be revoked, got %v", err)
	}
	if _, _, _, err := auth.Login("editor", "newsecret1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
