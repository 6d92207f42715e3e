package iexecschema

import (
	"io"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"

	"github.com/iexec-tools/iexecschema/i18n"
)

// EnvPrefix is the prefix of environment variables overriding Config fields,
// e.g. IEXECSCHEMA_LOG_LEVEL.
const EnvPrefix = "IEXECSCHEMA"

// Config holds process-wide settings. Validation results never depend on it;
// it only affects diagnostics (log level, message language, key hints).
type Config struct {
	// LogLevel applies to every iexecschema logger (debug, info, warn, error).
	LogLevel string `toml:"LogLevel" envconfig:"LOG_LEVEL"`
	// Language selects the message catalogue ("en" or "ja").
	Language string `toml:"Language" envconfig:"LANGUAGE"`
	// HintDistance is the maximum edit distance for "did you mean" hints on
	// unknown keys. Zero disables hints.
	HintDistance int `toml:"HintDistance" envconfig:"HINT_DISTANCE"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel:     "warn",
		Language:     "en",
		HintDistance: 2,
	}
}

// LoadConfig reads a TOML config from r on top of the defaults and applies
// environment overrides. A nil reader yields defaults plus environment.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if r != nil {
		if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
			return Config{}, xerrors.Errorf("decoding config: %w", err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, xerrors.Errorf("processing env vars overrides: %w", err)
	}
	return cfg, nil
}

// Configure applies cfg to the module loggers, message catalogue and hint
// settings.
func Configure(cfg Config) error {
	if cfg.LogLevel != "" {
		if err := logging.SetLogLevelRegex("^"+LoggerPrefix, cfg.LogLevel); err != nil {
			return xerrors.Errorf("setting log level %q: %w", cfg.LogLevel, err)
		}
	}
	if cfg.Language != "" {
		i18n.SetLanguage(cfg.Language)
	}
	if cfg.HintDistance < 0 {
		return xerrors.Errorf("hint distance must not be negative, got %d", cfg.HintDistance)
	}
	SetHintDistance(cfg.HintDistance)
	return nil
}

var hintDistance atomic.Int64

func init() { hintDistance.Store(int64(DefaultConfig().HintDistance)) }

// SetHintDistance sets the maximum edit distance used for unknown-key hints.
func SetHintDistance(n int) { hintDistance.Store(int64(n)) }

// HintDistance returns the maximum edit distance used for unknown-key hints.
func HintDistance() int { return int(hintDistance.Load()) }
