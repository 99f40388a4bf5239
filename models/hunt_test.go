package models_test

import (
	"testing"

	"treasurehunt_server/models"

	"github.com/stretchr/testify/require"
)

func TestParseHuntType(t *testing.T) {
	huntType, err := models.ParseHuntType("accepted")
	require.NoError(t, err)
	require.Equal(t, models.HuntTypeAccepted, huntType)

	huntType, err = models.ParseHuntType("COMPLETED")
	require.NoError(t, err)
	require.Equal(t, models.HuntTypeCompleted, huntType)

	_, err = models.ParseHuntType("PAUSED")
	require.Error(t, err)
}

func TestHuntTypeTypeTime(t *testing.T) {
	require.Equal(t, "STARTED#2024-05-01T10:00:00Z", models.HuntTypeStarted.TypeTime("2024-05-01T10:00:00Z"))
}

func TestHuntTypeTimestampAttribute(t *testing.T) {
	require.Equal(t, "AcceptedAt", models.HuntTypeAccepted.TimestampAttribute())
	require.Equal(t, "DeniedAt", models.HuntTypeDenied.TimestampAttribute())
	require.Equal(t, "StartedAt", models.HuntTypeStarted.TimestampAttribute())
	require.Equal(t, "StoppedAt", models.HuntTypeStopped.TimestampAttribute())
	require.Equal(t, "CompletedAt", models.HuntTypeCompleted.TimestampAttribute())
}

func TestLocationIsValid(t *testing.T) {
	require.True(t, models.Location{Latitude: 90, Longitude: 180}.IsValid())
	require.True(t, models.Location{Latitude: -90, Longitude: -180}.IsValid())
	require.False(t, models.Location{Latitude: 91, Longitude: 0}.IsValid())
	require.False(t, models.Location{Latitude: 0, Longitude: -180.5}.IsValid())
}
