package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "campushub-test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService()

	access, refresh, expiresIn, err := svc.GenerateTokenPair(42, "demo.student", "demo@campushub.app", "Student")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "demo.student", claims.Username)
	assert.Equal(t, "demo@campushub.app", claims.Email)
	assert.Equal(t, "Student", claims.Role)
	assert.Equal(t, "campushub-test", claims.Issuer)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	svc := newTestService()

	_, refresh, _, err := svc.GenerateTokenPair(42, "demo.student", "demo@campushub.app", "Student")
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Empty(t, claims.Username)
	assert.Empty(t, claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(JWTConfig{
		SecretKey:       "another-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campushub-test",
	})

	access, _, _, err := svc.GenerateTokenPair(1, "u", "u@x.com", "Student")
	require.NoError(t, err)

	_, err = other.ValidateAndExtractClaims(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campushub-test",
	})

	access, _, _, err := svc.GenerateTokenPair(1, "u", "u@x.com", "Student")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateAndExtractClaims("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.Error(t, err)

	_, err = ExtractBearerToken("Basic abc")
	assert.Error(t, err)
}
