package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "odontoforense-api",
	}
}

func TestGenerateAndValidate(t *testing.T) {
	cfg := testConfig()

	signed, err := Generate("507f1f77bcf86cd799439011", "perito", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Validate(signed, cfg.Secret)
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	require.Equal(t, "perito", claims.Perfil)
	require.Equal(t, "507f1f77bcf86cd799439011", claims.Subject)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Expiry = -time.Minute

	signed, err := Generate("507f1f77bcf86cd799439011", "admin", cfg)
	require.NoError(t, err)

	_, err = Validate(signed, cfg.Secret)
	require.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := Generate("507f1f77bcf86cd799439011", "admin", testConfig())
	require.NoError(t, err)

	_, err = Validate(signed, "another-secret")
	require.Error(t, err)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := Generate("id", "admin", &Config{Expiry: time.Hour})
	require.Error(t, err)

	_, err = Generate("id", "admin", nil)
	require.Error(t, err)
}
