package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret = "test-secret"
	testIssuer = "https://auth.registro-inpi.local"
	testKeyID  = "test-key"
)

func signHS256(t *testing.T, secret string, claims tokenClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func validClaims(sub, role string) tokenClaims {
	now := time.Now()
	return tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: sub + "@example.com",
		Role:  role,
	}
}

func TestHMACProvider_Authenticate(t *testing.T) {
	p, err := NewHMACProvider(testSecret, testIssuer, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := p.Authenticate(context.Background(), signHS256(t, testSecret, validClaims("u-1", "")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != "u-1" || id.Email != "u-1@example.com" || id.Role != entities.RoleUser {
		t.Fatalf("unexpected identity: %+v", id)
	}

	admin, err := p.Authenticate(context.Background(), signHS256(t, testSecret, validClaims("u-9", "admin")))
	if err != nil || !admin.IsAdmin() {
		t.Fatalf("expected admin identity, got %+v %v", admin, err)
	}
}

func TestHMACProvider_Rejects(t *testing.T) {
	p, _ := NewHMACProvider(testSecret, testIssuer, "admin")

	expired := validClaims("u-1", "")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noExp := validClaims("u-1", "")
	noExp.ExpiresAt = nil

	wrongIssuer := validClaims("u-1", "")
	wrongIssuer.Issuer = "https://evil.example.com"

	noSubject := validClaims("", "")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("u-1", "admin")).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": signHS256(t, "other-secret", validClaims("u-1", "")),
		"expired":      signHS256(t, testSecret, expired),
		"no exp":       signHS256(t, testSecret, noExp),
		"wrong issuer": signHS256(t, testSecret, wrongIssuer),
		"no subject":   signHS256(t, testSecret, noSubject),
		"alg none":     none,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Authenticate(context.Background(), token); !errors.Is(err, interfaces.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestNewHMACProvider_EmptySecret(t *testing.T) {
	if _, err := NewHMACProvider("", "", "admin"); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func jwksJSON(pub *rsa.PublicKey) json.RawMessage {
	data, _ := json.Marshal(map[string]any{
		"keys": []map[string]any{{
			"kty": "RSA",
			"kid": testKeyID,
			"use": "sig",
			"alg": "RS256",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	})
	return data
}

func TestJWKSProvider_Authenticate(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	kf, err := keyfunc.NewJWKSetJSON(jwksJSON(&key.PublicKey))
	if err != nil {
		t.Fatalf("keyfunc: %v", err)
	}
	p := NewProviderWithKeyfunc(kf, testIssuer, "admin")

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims("u-2", "admin"))
	tok.Header["kid"] = testKeyID
	signed, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, err := p.Authenticate(context.Background(), signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != "u-2" || !id.IsAdmin() {
		t.Fatalf("unexpected identity: %+v", id)
	}

	// An HMAC token must not pass a JWKS provider.
	if _, err := p.Authenticate(context.Background(), signHS256(t, testSecret, validClaims("u-2", "admin"))); !errors.Is(err, interfaces.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for HS256 token, got %v", err)
	}
}
