package middleware

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	InitAuth("test-secret")

	token, err := NewToken("u-1", "admin")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	InitAuth("test-secret")

	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	InitAuth("secret-one")
	token, err := NewToken("u-1", "member")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	InitAuth("secret-two")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected validation to fail after secret rotation")
	}
}
