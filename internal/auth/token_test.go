package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600, 86400)

	token, exp, err := tm.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry %v not in the future", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user-123")
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Errorf("expires_at %v not after issued_at %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 3600)

	_, accessExp, err := tm.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	_, refreshExp, err := tm.GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}
	if !refreshExp.After(accessExp) {
		t.Errorf("refresh expiry %v not after access expiry %v", refreshExp, accessExp)
	}
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600, 86400)
	tm.accessTTL = -time.Minute

	token, _, err := tm.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600, 86400)
	other := NewTokenManager("other-secret", 3600, 86400)

	token, _, err := tm.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected signature mismatch to fail verification")
	}
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600, 86400)
	if _, err := tm.ParseToken("not-a-jwt"); err == nil {
		t.Fatal("expected malformed token to fail verification")
	}
}
