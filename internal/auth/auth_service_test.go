package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})

	svc, err := NewAuthService(privPEM, pubPEM, 15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(t)

	pair, err := svc.GenerateTokenPair(42)
	if err != nil {
		t.Fatalf("generate token pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty tokens")
	}

	access, err := svc.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if access.UserID != 42 || access.TokenType != "access" {
		t.Fatalf("unexpected access claims: %+v", access)
	}

	refresh, err := svc.ValidateToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	if refresh.TokenType != "refresh" {
		t.Fatalf("expected refresh type got %q", refresh.TokenType)
	}
	if refresh.ID == "" {
		t.Fatalf("expected refresh token to carry a jti")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.ValidateToken(""); err == nil {
		t.Fatalf("expected error for empty token")
	}
	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestValidateTokenRejectsForeignKey(t *testing.T) {
	issuer := newTestService(t)
	verifier := newTestService(t)

	pair, err := issuer.GenerateTokenPair(1)
	if err != nil {
		t.Fatalf("generate token pair: %v", err)
	}
	if _, err := verifier.ValidateToken(pair.AccessToken); err == nil {
		t.Fatalf("expected token signed by another key to be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := newTestService(t)

	hash, err := svc.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !svc.CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatalf("expected password to match hash")
	}
	if svc.CheckPasswordHash("wrong password", hash) {
		t.Fatalf("expected mismatch to fail")
	}
}
