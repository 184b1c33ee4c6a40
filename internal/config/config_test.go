package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")

	cfg := Load()
	assert.Equal(t, "HS256", cfg.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "8000", cfg.Port)
	assert.True(t, cfg.RequireAuthForPredictions)
	assert.Empty(t, cfg.AdminUsernames)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("ADMIN_USERNAMES", "root, auditor")
	t.Setenv("REQUIRE_AUTH_FOR_PREDICTIONS", "false")

	cfg := Load()
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"root", "auditor"}, cfg.AdminUsernames)
	assert.False(t, cfg.RequireAuthForPredictions)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		SecretKey:         "s3cret",
		Algorithm:         "HS256",
		DiabetesModelPath: "a.json",
		CardiacModelPath:  "b.json",
	}
	require.NoError(t, cfg.Validate())

	missingKey := *cfg
	missingKey.SecretKey = ""
	assert.ErrorContains(t, missingKey.Validate(), "SECRET_KEY")

	badAlg := *cfg
	badAlg.Algorithm = "RS256"
	assert.ErrorContains(t, badAlg.Validate(), "unsupported signing algorithm")

	noModels := *cfg
	noModels.DiabetesModelPath = ""
	assert.Error(t, noModels.Validate())
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminUsernames: []string{"root"}}
	assert.True(t, cfg.IsAdmin("root"))
	assert.False(t, cfg.IsAdmin("alice"))
	assert.False(t, (&Config{}).IsAdmin("root"))
}
