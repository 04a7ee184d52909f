package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, expiresAt, err := svc.GenerateAccessToken(
		"user-1", "Ann", "ann@example.com",
		[]string{RoleManager}, []string{"venue-a", "venue-b"}, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt should be in the future, got %v", expiresAt)
	}

	uc, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if uc.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", uc.UserID)
	}
	if uc.Email != "ann@example.com" {
		t.Errorf("Email = %q", uc.Email)
	}
	if len(uc.VenueIDs) != 2 || uc.VenueIDs[0] != "venue-a" {
		t.Errorf("VenueIDs = %v", uc.VenueIDs)
	}
	if uc.IsAdmin {
		t.Error("IsAdmin should be false")
	}
	if !uc.HasVenueAccess("venue-b") {
		t.Error("expected access to venue-b")
	}
	if uc.HasVenueAccess("venue-c") {
		t.Error("unexpected access to venue-c")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-one"))
	verifier := NewJWTService(DefaultJWTConfig("secret-two"))

	token, _, err := issuer.GenerateAccessToken("user-1", "", "a@b.c", nil, nil, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected validation error for wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := DefaultJWTConfig("test-secret")
	cfg.AccessTokenTTL = -1 * time.Minute
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateAccessToken("user-1", "", "a@b.c", nil, nil, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected validation error for expired token")
	}
}
