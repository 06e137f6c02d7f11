package app

import (
	"errors"
	"testing"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"

	"go.uber.org/zap"
)

type fakeAdminSeeder struct {
	calls    int
	username string
	password string
	admin    *models.Admin
	err      error
}

func (f *fakeAdminSeeder) EnsureDefaultAdmin(username, password string) (*models.Admin, error) {
	f.calls++
	f.username, f.password = username, password
	return f.admin, f.err
}

func TestNormalizeOptionsShutdownTimeout(t *testing.T) {
	t.Setenv(envDefaultAdminUsername, "")
	t.Setenv(envDefaultAdminPassword, "")

	opts := normalizeOptions(Options{})
	if opts.ShutdownTimeout != defaultShutdownTimeout || opts.Logger == nil {
		t.Fatalf("unexpected defaults: %+v", opts)
	}

	cfg := &config.Config{Server: config.ServerConfig{ShutdownTimeoutSeconds: 3}}
	if got := normalizeOptions(Options{Config: cfg}).ShutdownTimeout; got != 3*time.Second {
		t.Fatalf("config timeout not applied: %v", got)
	}
	if got := normalizeOptions(Options{Config: cfg, ShutdownTimeout: time.Second}).ShutdownTimeout; got != time.Second {
		t.Fatalf("explicit timeout should win: %v", got)
	}
}

func TestNormalizeOptionsDefaultAdminFromEnv(t *testing.T) {
	t.Setenv(envDefaultAdminUsername, " owner ")
	t.Setenv(envDefaultAdminPassword, "env-secret1")

	opts := normalizeOptions(Options{})
	if opts.DefaultAdmin.Username != "owner" || opts.DefaultAdmin.Password != "env-secret1" || opts.DefaultAdmin.Skip {
		t.Fatalf("env values not applied: %+v", opts.DefaultAdmin)
	}

	opts = normalizeOptions(Options{DefaultAdmin: DefaultAdminOptions{Username: "root", Password: "flag-secret1"}})
	if opts.DefaultAdmin.Username != "root" || opts.DefaultAdmin.Password != "flag-secret1" {
		t.Fatalf("explicit values should win: %+v", opts.DefaultAdmin)
	}
}

func TestNormalizeOptionsSkipsDefaultPasswordInRelease(t *testing.T) {
	t.Setenv(envDefaultAdminUsername, "")
	t.Setenv(envDefaultAdminPassword, "")

	release := &config.Config{Server: config.ServerConfig{Mode: "release"}}
	if !normalizeOptions(Options{Config: release}).DefaultAdmin.Skip {
		t.Fatalf("release without password should skip default admin")
	}
	debug := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	if normalizeOptions(Options{Config: debug}).DefaultAdmin.Skip {
		t.Fatalf("debug mode may fall back to the built-in password")
	}
}

func TestSeedDefaultAdmin(t *testing.T) {
	log := zap.NewNop().Sugar()

	skipped := &fakeAdminSeeder{}
	seedDefaultAdmin(skipped, DefaultAdminOptions{Skip: true}, log)
	if skipped.calls != 0 {
		t.Fatalf("skip should not touch the store")
	}

	seeder := &fakeAdminSeeder{admin: &models.Admin{Username: "owner"}}
	seedDefaultAdmin(seeder, DefaultAdminOptions{Username: "owner", Password: "env-secret1"}, log)
	if seeder.calls != 1 || seeder.username != "owner" || seeder.password != "env-secret1" {
		t.Fatalf("unexpected seeder call: %+v", seeder)
	}

	failing := &fakeAdminSeeder{err: errors.New("db down")}
	seedDefaultAdmin(failing, DefaultAdminOptions{}, log)
	if failing.calls != 1 {
		t.Fatalf("failure should still attempt once")
	}
}

func TestBuildRunnerRequiresInputs(t *testing.T) {
	if _, err := BuildRunner(nil, nil); err == nil {
		t.Fatalf("nil config should error")
	}
	if _, err := BuildRunner(&config.Config{}, nil); err == nil {
		t.Fatalf("nil container should error")
	}
	if got := listenAddr(config.ServerConfig{Host: "127.0.0.1", Port: "8080"}); got != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr: %s", got)
	}
}
