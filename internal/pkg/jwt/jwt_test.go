package jwt

import (
	"testing"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateAccessToken("acc-1", "alice@example.com", "Alice", "REGISTERED", "test-secret", 15)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	claims, err := ValidateAccessToken(tok, "test-secret")
	if err != nil {
		t.Fatalf("ValidateAccessToken error: %v", err)
	}
	if claims.AccountID != "acc-1" {
		t.Fatalf("AccountID mismatch: got %q", claims.AccountID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("Email mismatch: got %q", claims.Email)
	}
	if claims.Kind != "REGISTERED" {
		t.Fatalf("Kind mismatch: got %q", claims.Kind)
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateAccessToken("acc-1", "a@b.c", "A", "DEMO", "secret", -1)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = ValidateAccessToken(tok, "secret")
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateAccessToken("acc-1", "a@b.c", "A", "GUEST", "right-secret", 15)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	if _, err := ValidateAccessToken(tok, "wrong-secret"); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateAccessToken("not.a.jwt", "k"); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateRefreshToken("acc-9", "tok-id-1", "refresh-secret", 7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	claims, err := ValidateRefreshToken(tok, "refresh-secret")
	if err != nil {
		t.Fatalf("ValidateRefreshToken error: %v", err)
	}
	if claims.AccountID != "acc-9" || claims.TokenID != "tok-id-1" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRefreshTokenNotValidAsAccessSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateRefreshToken("acc-9", "tok-id-1", "refresh-secret", 7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	if _, err := ValidateRefreshToken(tok, "other-secret"); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
