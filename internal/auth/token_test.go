package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, err := tm.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", subject, "alice")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", -1*time.Second)

	tok, err := tm.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = tm.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	tok, err := issuer.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err = verifier.Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", time.Hour)
	if _, err := tm.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := raw.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	tm := NewTokenManager("k", time.Hour)
	if _, err := tm.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestIssue_EmbedsConfiguredExpiry(t *testing.T) {
	t.Parallel()

	ttl := 30 * time.Minute
	tm := NewTokenManager("secret", ttl)

	before := time.Now()
	tok, err := tm.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	after := time.Now()

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims error: %v", err)
	}

	exp := claims.ExpiresAt.Time
	if exp.Before(before.Add(ttl).Add(-time.Second)) || exp.After(after.Add(ttl).Add(time.Second)) {
		t.Fatalf("expiry %v not within expected window around now+%v", exp, ttl)
	}
}
