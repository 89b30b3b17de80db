package money

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/finwire/go-money/currency"
	"github.com/finwire/go-money/l10n"
)

// Default settings applied when a Config leaves them unset.
const (
	// DefaultDecimalPlaces is the precision hint given to values
	// constructed without an explicit one.
	DefaultDecimalPlaces int32 = 2

	// DefaultLanguageCode is the language used to resolve the
	// rendering locale when no language is active.
	DefaultLanguageCode = "en-us"
)

// Converter converts a monetary value into a target currency. It is
// the hook into an external exchange-rate subsystem; the exchange
// package provides an in-memory implementation.
type Converter interface {
	Convert(m *Money, to currency.Currency) (*Money, error)
}

// Config carries the settings this package reads. It replaces the
// process-wide state a web framework would provide: a Config is
// injected explicitly, held by each Money value and handed down to
// every derived value.
//
// Config is read-only from this package's perspective.
type Config struct {
	// DecimalPlaces is the default precision hint applied when a
	// value is constructed without an explicit one.
	DecimalPlaces int32

	// Format holds the default presentation options, merged under
	// each value's own overrides at rendering time.
	Format l10n.Options

	// ActiveLanguage is the currently active language code, if
	// any.
	ActiveLanguage string

	// DefaultLanguage is the language code used when no language
	// is active.
	DefaultLanguage string

	// Localize reports whether values render localized. Unset
	// means enabled.
	Localize *bool

	// AutoConvert enables converting operands to the left-hand
	// currency before addition and subtraction.
	AutoConvert bool

	// Converter performs the conversion when AutoConvert is set.
	Converter Converter
}

// DefaultConfig returns the settings used when no configuration is
// injected.
func DefaultConfig() *Config {
	return &Config{
		DecimalPlaces:   DefaultDecimalPlaces,
		DefaultLanguage: DefaultLanguageCode,
	}
}

// defaultConfig backs values constructed without an explicit Config.
var defaultConfig = DefaultConfig()

// Localized reports the localization flag, defaulting to enabled
// when the flag is absent.
func (c *Config) Localized() bool {
	if c == nil || c.Localize == nil {
		return true
	}

	return *c.Localize
}

// CurrentLocale resolves the rendering locale from the active
// language, falling back to the default language code.
func (c *Config) CurrentLocale() language.Tag {
	if c == nil {
		return l10n.Resolve("", DefaultLanguageCode)
	}

	return l10n.Resolve(c.ActiveLanguage, c.DefaultLanguage)
}

// fileConfig is the YAML shape of a configuration file.
type fileConfig struct {
	DecimalPlaces   *int32       `yaml:"decimal_places"`
	Format          l10n.Options `yaml:"format"`
	ActiveLanguage  string       `yaml:"active_language"`
	DefaultLanguage string       `yaml:"default_language"`
	Localize        *bool        `yaml:"localize"`

	// use_l10n is the deprecated spelling of localize. It is still
	// accepted, deliberately without a deprecation notice, so
	// configuration written for older releases keeps loading
	// quietly.
	UseL10N *bool `yaml:"use_l10n"`

	AutoConvert bool `yaml:"auto_convert"`
}

// LoadConfig reads a YAML configuration file and merges it over the
// defaults. A nil logger disables load diagnostics.
func LoadConfig(path string, log *zap.Logger) (*Config, error) {
	if log == nil {
		log = zap.NewNop()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig

	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()

	if fc.DecimalPlaces != nil {
		cfg.DecimalPlaces = *fc.DecimalPlaces
	}

	cfg.Format = fc.Format

	if fc.ActiveLanguage != "" {
		cfg.ActiveLanguage = fc.ActiveLanguage
	}

	if fc.DefaultLanguage != "" {
		cfg.DefaultLanguage = fc.DefaultLanguage
	}

	switch {
	case fc.Localize != nil:
		cfg.Localize = fc.Localize
	case fc.UseL10N != nil:
		cfg.Localize = fc.UseL10N
	}

	cfg.AutoConvert = fc.AutoConvert

	log.Debug(
		"money config loaded",
		zap.String("path", path),
		zap.Int32("decimal_places", cfg.DecimalPlaces),
		zap.Bool("auto_convert", cfg.AutoConvert),
		zap.Bool("localized", cfg.Localized()),
	)

	return cfg, nil
}
