// Package jwtmw issues and verifies HS256 access tokens and provides the
// gin middleware that authenticates requests with them.
package jwtmw

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop_backend/internal/shared/apperr"
	"shop_backend/internal/shared/role"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = apperr.Unauthenticated("invalid or expired token")

// Claims is the access token payload.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated principal carried by a token.
type Identity struct {
	UserID uint
	Email  string
	Role   role.Role
}

// Options configures token signing and verification.
type Options struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Generator signs and verifies access tokens with a shared secret.
type Generator struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewGenerator creates a Generator from opts.
func NewGenerator(opts Options) *Generator {
	return &Generator{
		secret:   []byte(opts.Secret),
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
		now:      time.Now,
	}
}

// GenerateToken signs an access token for the identity and returns it with its expiry.
func (g *Generator) GenerateToken(id Identity) (string, time.Time, error) {
	now := g.now()
	exp := now.Add(g.ttl)
	claims := Claims{
		Email: id.Email,
		Role:  id.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id.UserID), 10),
			Issuer:    g.issuer,
			Audience:  jwt.ClaimStrings{g.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry.
func (g *Generator) Verify(token string) (Identity, error) {
	return g.parse(token,
		jwt.WithIssuer(g.issuer),
		jwt.WithAudience(g.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
}

// VerifyIgnoringExpiry checks signature, algorithm, issuer and audience but
// accepts expired tokens. Refresh uses it to bind a refresh token to the
// access token it was issued with.
func (g *Generator) VerifyIgnoringExpiry(token string) (Identity, error) {
	id, claims, err := g.parseClaims(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return Identity{}, err
	}
	if claims.Issuer != g.issuer || !slices.Contains(claims.Audience, g.audience) {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}

func (g *Generator) parse(token string, opts ...jwt.ParserOption) (Identity, error) {
	id, _, err := g.parseClaims(token, opts...)
	return id, err
}

func (g *Generator) parseClaims(token string, opts ...jwt.ParserOption) (Identity, *Claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return Identity{}, nil, errors.Join(ErrInvalidToken, err)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return Identity{}, nil, ErrInvalidToken
	}
	r, err := role.Parse(claims.Role)
	if err != nil {
		return Identity{}, nil, ErrInvalidToken
	}
	return Identity{UserID: uint(userID), Email: claims.Email, Role: r}, claims, nil
}
