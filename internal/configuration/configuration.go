// Package configuration reads the optional settings file of the application.
// The settings file is a dotenv-style file of KEY=VALUE lines; a missing file
// results in the defaults, which mirror the behavior without any settings.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/desertwitch/structcheck/internal/checksum"
)

const (
	// SettingsFile is the settings file looked up in the working directory.
	SettingsFile = ".structcheck.env"

	SettingLogLevel         = "STRUCTCHECK_LOG_LEVEL"
	SettingBaseDir          = "STRUCTCHECK_BASE_DIR"
	SettingDefaultAlgorithm = "STRUCTCHECK_DEFAULT_ALGORITHM"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the principal structure holding the application configuration.
type Settings struct {
	LogLevel         slog.Level
	BaseDir          string
	DefaultAlgorithm checksum.Algorithm
}

// DefaultSettings returns a pointer to new [Settings] holding the defaults.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:         slog.LevelWarn,
		DefaultAlgorithm: checksum.DefaultAlgorithm,
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadSettings reads [Settings] from a settings file. A settings file that
// does not exist results in [DefaultSettings], unset keys keep their default.
func (c *Handler) ReadSettings(filename string) (*Settings, error) {
	settings := DefaultSettings()

	envMap, err := c.genericHandler.Read(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return nil, fmt.Errorf("(config-read) %w", err)
	}

	if v := c.MapKeyToString(envMap, SettingLogLevel); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("(config-read) %w: %q", ErrInvalidLogLevel, v)
		}
		settings.LogLevel = level
	}

	settings.BaseDir = c.MapKeyToString(envMap, SettingBaseDir)

	if v := c.MapKeyToString(envMap, SettingDefaultAlgorithm); v != "" {
		algo, err := checksum.ParseAlgorithm(v)
		if err != nil {
			return nil, fmt.Errorf("(config-read) %w: %w", ErrInvalidAlgorithm, err)
		}
		settings.DefaultAlgorithm = algo
	}

	return settings, nil
}

// MapKeyToString returns the trimmed value of a key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}
