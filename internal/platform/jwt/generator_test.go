package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/shared/apperr"
	"shop_backend/internal/shared/role"
)

func testOptions() Options {
	return Options{Secret: "test-secret", Issuer: "shop_backend", Audience: "shop_storefront", TTL: time.Hour}
}

func TestGenerator_GenerateToken_Claims(t *testing.T) {
	t.Parallel()

	g := NewGenerator(testOptions())
	before := time.Now().Truncate(time.Second)

	token, exp, err := g.GenerateToken(Identity{UserID: 42, Email: "a@b.com", Role: role.Admin})
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Hour), exp, 2*time.Second)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "shop_backend", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"shop_storefront"}, claims.Audience)
	assert.NotNil(t, claims.IssuedAt)
}

func TestGenerator_Verify(t *testing.T) {
	t.Parallel()

	g := NewGenerator(testOptions())
	valid, _, err := g.GenerateToken(Identity{UserID: 7, Email: "u@shop.test", Role: role.User})
	require.NoError(t, err)

	expiredGen := NewGenerator(testOptions())
	expiredGen.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredGen.GenerateToken(Identity{UserID: 7, Email: "u@shop.test", Role: role.User})
	require.NoError(t, err)

	otherIssuer := testOptions()
	otherIssuer.Issuer = "someone-else"
	foreign, _, err := NewGenerator(otherIssuer).GenerateToken(Identity{UserID: 7, Role: role.User})
	require.NoError(t, err)

	otherSecret := testOptions()
	otherSecret.Secret = "wrong"
	forged, _, err := NewGenerator(otherSecret).GenerateToken(Identity{UserID: 7, Role: role.User})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "7", "role": "Admin", "iss": "shop_backend", "aud": "shop_storefront",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", valid, false},
		{"expired", expired, true},
		{"wrong issuer", foreign, true},
		{"wrong secret", forged, true},
		{"alg none", none, true},
		{"garbage", "not.a.token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := g.Verify(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.True(t, apperr.Is(err, apperr.KindUnauthenticated))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Identity{UserID: 7, Email: "u@shop.test", Role: role.User}, id)
		})
	}

	t.Run("expired is accepted when ignoring expiry", func(t *testing.T) {
		t.Parallel()

		id, err := g.VerifyIgnoringExpiry(expired)
		require.NoError(t, err)
		assert.EqualValues(t, 7, id.UserID)
	})

	t.Run("ignoring expiry still checks issuer and signature", func(t *testing.T) {
		t.Parallel()

		_, err := g.VerifyIgnoringExpiry(foreign)
		assert.ErrorIs(t, err, ErrInvalidToken)
		_, err = g.VerifyIgnoringExpiry(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
