package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/roach88/tempus"
	"github.com/roach88/tempus/civil"
	"github.com/roach88/tempus/internal/presets"
)

// Config holds CLI configuration loaded from a TOML file.
//
// The file is named by the --config flag or the TEMPUS_CONFIG
// environment variable; when neither is set, built-in defaults apply.
type Config struct {
	// Format is the default output format ("text" or "json"). The
	// --format flag overrides it.
	Format string `toml:"format"`

	// Preset is the default rendering preset applied when a command
	// gets no --preset flag. Empty means "full".
	Preset string `toml:"preset"`

	// PresetDir is a directory of CUE preset definitions that extend
	// the built-in presets.
	PresetDir string `toml:"preset_dir"`

	// Zone selects the zone local readings are resolved in.
	Zone ZoneConfig `toml:"zone"`
}

// ZoneConfig pins the engine's zone.
type ZoneConfig struct {
	// UTCOffset fixes the zone to a constant displacement east of UTC,
	// in seconds. Unset means the host timezone.
	UTCOffset *int `toml:"utc_offset"`
}

// DefaultConfig returns the configuration used when no file is named.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a TOML configuration file. Unknown
// keys are rejected so a typo cannot silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	} else if err != nil {
		return nil, fmt.Errorf("accessing config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if cfg.Format != "" && !isValidFormat(cfg.Format) {
		return nil, fmt.Errorf("invalid format %q in %s: must be one of %v", cfg.Format, path, ValidFormats)
	}

	return cfg, nil
}

// loadConfig resolves the effective configuration once per invocation
// and memoizes it on the shared root options. Precedence: --config
// flag, then TEMPUS_CONFIG, then built-in defaults.
func loadConfig(opts *RootOptions) (*Config, error) {
	if opts.cfg != nil {
		return opts.cfg, nil
	}

	path := opts.Config
	if path == "" {
		path = os.Getenv("TEMPUS_CONFIG")
	}

	if path == "" {
		opts.cfg = DefaultConfig()
		return opts.cfg, nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeConfig, Message: err.Error()}
	}
	opts.cfg = cfg
	return cfg, nil
}

// newEngine builds the engine a command runs against: the configured
// zone override or the host zone, plus any injected test capabilities.
func newEngine(opts *RootOptions, extra ...tempus.EngineOption) (*tempus.Engine, *Config, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	zone := opts.Zone
	if zone == nil && cfg.Zone.UTCOffset != nil {
		fixed, zerr := tempus.NewFixedZone(*cfg.Zone.UTCOffset)
		if zerr != nil {
			return nil, nil, &LoadError{
				Code:    ErrCodeZone,
				Message: fmt.Sprintf("zone.utc_offset: %v", zerr),
			}
		}
		zone = fixed
	}

	var engineOpts []tempus.EngineOption
	if opts.Stamps != nil {
		engineOpts = append(engineOpts, tempus.WithStampGenerator(opts.Stamps))
	}
	engineOpts = append(engineOpts, extra...)

	return tempus.New(opts.Clock, zone, engineOpts...), cfg, nil
}

// zoneLabel names the zone a report was resolved in.
func zoneLabel(cfg *Config) string {
	if cfg.Zone.UTCOffset != nil {
		if off, err := tempus.NewOffset(*cfg.Zone.UTCOffset); err == nil {
			return "fixed " + off.String()
		}
	}
	return "system"
}

// resolvePreset resolves a preset name to format options. An empty
// name falls back to the configured default, then to "full". Built-in
// presets are consulted first, then the configured CUE preset pack.
func resolvePreset(cfg *Config, name string) (tempus.FormatOptions, string, error) {
	if name == "" {
		name = cfg.Preset
	}
	if name == "" {
		name = "full"
	}

	opts, err := tempus.PresetByName(name)
	if err == nil {
		return opts, name, nil
	}

	if cfg.PresetDir != "" {
		pack, loadErr := presets.Load(cfg.PresetDir)
		if loadErr != nil {
			return tempus.FormatOptions{}, name, &LoadError{
				Code:    ErrCodePresetPack,
				Message: fmt.Sprintf("loading preset pack: %v", loadErr),
			}
		}
		if p, ok := pack.Lookup(name); ok {
			return p.Options, name, nil
		}
	}

	return tempus.FormatOptions{}, name, &LoadError{
		Code:    ErrCodePresetName,
		Message: fmt.Sprintf("unknown preset %q", name),
	}
}

// LoadError is a configuration or environment failure detected before
// a command's real work starts, carrying the CLI error code to report.
type LoadError struct {
	Code    string // Error code (e.g., "E003")
	Message string // Human-readable message
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapErrorCode returns the CLI error code for a conversion error.
func MapErrorCode(err error) string {
	switch {
	case civil.IsInvalidDate(err):
		return ErrCodeInvalidDate
	case civil.IsOutOfRange(err):
		return ErrCodeOutOfRange
	case civil.IsOverflow(err):
		return ErrCodeOverflow
	}
	return ErrCodeGeneric
}

// Error codes for CLI failures
const (
	// Infrastructure error codes
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeBadArgument = "E002" // Malformed command-line argument
	ErrCodeConfig      = "E003" // Config file unreadable or invalid
	ErrCodePresetPack  = "E004" // Preset pack failed to load
	ErrCodePresetName  = "E005" // Unknown preset name
	ErrCodeZone        = "E006" // Zone override rejected

	// Conversion error codes (engine error kinds)
	ErrCodeInvalidDate = "E101" // Date does not exist in the calendar
	ErrCodeOutOfRange  = "E102" // Field value outside its legal domain
	ErrCodeOverflow    = "E103" // Value not representable in the requested unit
)
