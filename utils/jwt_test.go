package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(42, "staff", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := ParseToken(tok, "secret")
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "staff" {
		t.Errorf("claims = (%d, %q), want (42, staff)", claims.UserID, claims.Role)
	}

	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Error("wrong secret should be rejected")
	}
}

func TestParseExpiredToken(t *testing.T) {
	tok, err := GenerateToken(1, "student", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if _, err := ParseToken(tok, "secret"); err == nil {
		t.Error("expired token should be rejected")
	}
}
