package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Settings holds the runtime configuration that may vary between runs.
type Settings struct {
	// StoragePath is the address book file handed to the storage adapter.
	StoragePath string `koanf:"storage_path"`

	// Debug enables debug-level logging.
	Debug bool `koanf:"debug"`

	// ReminderTrigger is the ISO 8601 duration used for calendar alarms ("" disables them).
	ReminderTrigger string `koanf:"reminder_trigger"`
}

// defaultSettings returns the compiled defaults.
func defaultSettings() *Settings {
	return &Settings{
		StoragePath:     DefaultFile,
		ReminderTrigger: DefaultRemind,
	}
}

// LoadSettings applies CONTACTS_* environment variables on top of the defaults.
// CONTACTS_STORAGE_PATH maps to storage_path, CONTACTS_DEBUG to debug, and so on.
func LoadSettings() (*Settings, error) {
	k := koanf.New(KoanfDelim)

	err := k.Load(env.Provider(EnvPrefix, KoanfDelim, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: load env vars: %w", ErrSettingsLoad, err)
	}

	cfg := defaultSettings()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%s: unmarshal: %w", ErrSettingsLoad, err)
	}

	if strings.TrimSpace(cfg.StoragePath) == "" {
		return nil, errors.New(ErrStoragePath)
	}
	return cfg, nil
}
