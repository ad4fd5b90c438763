//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "front-desk-secret"

func sign(t *testing.T, method gojwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func registered(issuer string, expiresIn time.Duration) gojwt.RegisteredClaims {
	now := time.Now()
	return gojwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "staff",
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(expiresIn)),
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)

	token, expiresAt, err := svc.GenerateToken("staff", jwt.RoleStaff)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	assert.Equal(t, time.Hour, svc.TokenDuration())

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff", claims.Subject)
	assert.Equal(t, jwt.RoleStaff, claims.Role)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS256, jwt.Claims{Role: jwt.RoleStaff, RegisteredClaims: registered(jwt.Issuer, -time.Minute)})
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS256, jwt.Claims{Role: jwt.RoleStaff, RegisteredClaims: registered("someone-else", time.Hour)})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "other hmac algorithm",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS384, jwt.Claims{Role: jwt.RoleStaff, RegisteredClaims: registered(jwt.Issuer, time.Hour)})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "different secret",
			token: func(t *testing.T) string {
				other := jwt.NewService("another-secret", time.Hour)
				s, _, err := other.GenerateToken("staff", jwt.RoleStaff)
				require.NoError(t, err)
				return s
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
