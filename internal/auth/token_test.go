package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndValidateAccessToken(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := svc.IssueAccessToken()
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("subject = %q, want admin", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
	if claims.Issuer != "inkwell" {
		t.Errorf("issuer = %q, want inkwell", claims.Issuer)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 55*time.Minute || ttl > time.Hour {
		t.Errorf("expiry %v out of the expected window", ttl)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.IssueAccessToken()
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with a different secret validated")
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), -time.Minute)

	token, err := svc.IssueAccessToken()
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)
	if _, err := svc.ValidateAccessToken("not.a.token"); err == nil {
		t.Fatal("garbage token validated")
	}
}

// Tokens signed with "none" must be rejected even when the payload parses.
func TestValidateAccessToken_RejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "admin",
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign with none: %v", err)
	}

	_, err = svc.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("unsigned token validated")
	}
	if !strings.Contains(err.Error(), "parse token") {
		t.Errorf("err = %v, want parse failure", err)
	}
}

func TestAccessTokenTTL(t *testing.T) {
	svc := NewTokenService([]byte("x"), 30*time.Minute)
	if got := svc.AccessTokenTTL(); got != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 30m", got)
	}
}
