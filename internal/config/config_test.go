package config

import (
	"strings"
	"testing"
)

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_ACTIVATION_SECRET", "activation-secret")
	t.Setenv("AUTH_FORGOT_PASSWORD_SECRET", "forgot-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("AUTH_REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Auth.ActivationTTLMinutes != 5 || cfg.Auth.ResetTTLMinutes != 5 {
		t.Fatalf("unexpected short-lived token TTLs: %+v", cfg.Auth)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("expected default bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.AccessTokenTTLMinutes >= cfg.Auth.RefreshTokenTTLMinutes {
		t.Fatal("access TTL should be shorter than refresh TTL")
	}
	if cfg.App.ClientURL == "" {
		t.Fatal("expected a client URL default")
	}
}

func TestLoadRequiresEverySecret(t *testing.T) {
	secrets := []string{
		"AUTH_ACTIVATION_SECRET",
		"AUTH_FORGOT_PASSWORD_SECRET",
		"AUTH_ACCESS_TOKEN_SECRET",
		"AUTH_REFRESH_TOKEN_SECRET",
	}

	for _, missing := range secrets {
		t.Run(missing, func(t *testing.T) {
			setRequiredSecrets(t)
			t.Setenv(missing, "")

			if _, err := Load(); err == nil || !strings.Contains(err.Error(), missing) {
				t.Fatalf("expected error naming %s, got %v", missing, err)
			}
		})
	}
}
