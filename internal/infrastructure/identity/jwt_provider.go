package identity

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

const defaultLeeway = 30 * time.Second

// tokenClaims is the access token payload. Role carries the single role
// claim; anything other than the configured admin role is a plain user.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTProvider validates bearer tokens either with a shared HMAC secret
// (HS256) or against a JWKS endpoint (RS256/ES256).
type JWTProvider struct {
	keyfunc   func(ctx context.Context) jwt.Keyfunc
	methods   []string
	issuer    string
	adminRole string
}

var _ interfaces.IIdentityProvider = (*JWTProvider)(nil)

func NewHMACProvider(secret, issuer, adminRole string) (*JWTProvider, error) {
	if secret == "" {
		return nil, fmt.Errorf("identity: empty hmac secret")
	}
	key := []byte(secret)
	kf := func(*jwt.Token) (any, error) { return key, nil }
	log.Printf("[identity][jwt] hmac provider ready issuer=%q", issuer)
	return &JWTProvider{
		keyfunc:   func(context.Context) jwt.Keyfunc { return kf },
		methods:   []string{jwt.SigningMethodHS256.Alg()},
		issuer:    issuer,
		adminRole: adminRole,
	}, nil
}

// NewJWKSProvider fetches and refreshes keys from jwksURL in the background
// for the lifetime of ctx.
func NewJWKSProvider(ctx context.Context, jwksURL, issuer, adminRole string) (*JWTProvider, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("identity: load jwks %s: %w", jwksURL, err)
	}
	log.Printf("[identity][jwt] jwks provider ready url=%s issuer=%q", jwksURL, issuer)
	return NewProviderWithKeyfunc(k, issuer, adminRole), nil
}

// NewProviderWithKeyfunc builds a provider over an existing key set.
func NewProviderWithKeyfunc(k keyfunc.Keyfunc, issuer, adminRole string) *JWTProvider {
	return &JWTProvider{
		keyfunc:   k.KeyfuncCtx,
		methods:   []string{"RS256", "ES256"},
		issuer:    issuer,
		adminRole: adminRole,
	}
}

func (p *JWTProvider) Authenticate(ctx context.Context, token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, fmt.Errorf("%w: missing token", interfaces.ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(p.methods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, p.keyfunc(ctx), opts...)
	if err != nil || !parsed.Valid {
		return entities.Identity{}, fmt.Errorf("%w: %v", interfaces.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return entities.Identity{}, fmt.Errorf("%w: token has no subject", interfaces.ErrUnauthenticated)
	}

	role := entities.RoleUser
	if p.adminRole != "" && claims.Role == p.adminRole {
		role = entities.RoleAdmin
	}
	return entities.Identity{UserID: claims.Subject, Email: claims.Email, Role: role}, nil
}
