package config_test

import (
	"testing"

	"treasurehunt_server/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	for _, name := range []string{"PORT", "AWS_REGION", "PLAYER_HUNTS_TABLE", "STORAGE_BACKEND", "CORS_ORIGINS"} {
		t.Setenv(name, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "us-east-1", cfg.AWSRegion)
	require.Equal(t, "PlayerHunts", cfg.PlayerHuntsTable)
	require.Equal(t, "dynamodb", cfg.StorageBackend)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PLAYER_HUNTS_TABLE", "PlayerHuntsTest")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("CORS_ORIGINS", "https://hunt.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "PlayerHuntsTest", cfg.PlayerHuntsTable)
	require.Equal(t, "memory", cfg.StorageBackend)
	require.Equal(t, []string{"https://hunt.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}
