package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultFile", config.DefaultFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDateLayouts_RoundTrip guards the layouts the user types and reads.
func TestDateLayouts_RoundTrip(t *testing.T) {
	d := time.Date(1990, 6, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "12.06.1990", d.Format(config.DateFormatBirthday))
	assert.Equal(t, "1990.06.12", d.Format(config.DateFormatCongrats))
	assert.Equal(t, "1990-06-12", d.Format(config.DateFormatVCard))
	assert.Equal(t, "19900612", d.Format(config.DateFormatVCardBasic))
}

// TestDefaults_Sanity checks that business constants make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneLength)
	assert.Equal(t, 7, config.UpcomingWindowDays)
	assert.Greater(t, config.DefaultICalRefresh, 0*time.Second)
}

func TestLoadSettings_Defaults(t *testing.T) {
	cfg, err := config.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, cfg.StoragePath)
	assert.False(t, cfg.Debug)
	assert.Equal(t, config.DefaultRemind, cfg.ReminderTrigger)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("CONTACTS_STORAGE_PATH", "/tmp/book.vcf")
	t.Setenv("CONTACTS_DEBUG", "true")
	t.Setenv("CONTACTS_REMINDER_TRIGGER", "-P2D")

	cfg, err := config.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/book.vcf", cfg.StoragePath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "-P2D", cfg.ReminderTrigger)
}

func TestLoadSettings_IgnoresUnprefixedVars(t *testing.T) {
	t.Setenv("STORAGE_PATH", "/elsewhere.vcf")

	cfg, err := config.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, cfg.StoragePath)
}

func TestLoadSettings_EmptyStoragePath(t *testing.T) {
	t.Setenv("CONTACTS_STORAGE_PATH", "  ")

	_, err := config.LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrStoragePath)
}
