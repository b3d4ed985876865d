package daemon

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config specifies all daemon parameters: virtual-screen bounds, storage
// location, backend selection, and objective weights. It supports YAML
// parsing and a Validate pass, matching pkg/dungeon.Config's idiom in the
// teacher exactly.
type Config struct {
	// Bounds is the virtual-screen bounding box every solve runs inside.
	Bounds BoundsCfg `yaml:"bounds" json:"bounds"`

	// DBPath is the path to the fingerprint -> arrangement JSON store.
	DBPath string `yaml:"dbPath" json:"dbPath"`

	// PollIntervalSeconds is a polling period in seconds, loaded and
	// validated here. The Supervisor does not read it: Run returns an
	// error when the backend's Subscribe fails and does not poll.
	PollIntervalSeconds int `yaml:"pollIntervalSeconds" json:"pollIntervalSeconds"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel" json:"logLevel"`

	// BackendKind selects the Adapter implementation: "x11" or "fake".
	BackendKind string `yaml:"backendKind" json:"backendKind"`

	// GapCoefficient and CenterCoefficient are the packer objective's
	// linear weights (spec.md §4.3); both default to 1 when zero.
	GapCoefficient    int `yaml:"gapCoefficient" json:"gapCoefficient"`
	CenterCoefficient int `yaml:"centerCoefficient" json:"centerCoefficient"`
}

// ValidLogLevels lists all accepted LogLevel values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidBackendKinds lists all accepted BackendKind values.
var ValidBackendKinds = []string{"x11", "fake"}

// BoundsCfg is the virtual-screen bounding box.
type BoundsCfg struct {
	WMin int `yaml:"wMin" json:"wMin"`
	HMin int `yaml:"hMin" json:"hMin"`
	WMax int `yaml:"wMax" json:"wMax"`
	HMax int `yaml:"hMax" json:"hMax"`
}

// DefaultConfig returns a Config suitable for running against a fake
// backend with no persisted state, the shape outlayctl uses when no
// config file is supplied.
func DefaultConfig() Config {
	return Config{
		Bounds:              BoundsCfg{WMax: 7680, HMax: 4320},
		DBPath:              "outlayd-store.json",
		PollIntervalSeconds: 2,
		LogLevel:            "info",
		BackendKind:         "fake",
		GapCoefficient:      1,
		CenterCoefficient:   1,
	}
}

// PollInterval returns PollIntervalSeconds as a time.Duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.GapCoefficient == 0 {
		cfg.GapCoefficient = 1
	}
	if cfg.CenterCoefficient == 0 {
		cfg.CenterCoefficient = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("bounds: %w", err)
	}
	if c.DBPath == "" {
		return errors.New("dbPath must not be empty")
	}
	if c.PollIntervalSeconds <= 0 {
		return fmt.Errorf("pollIntervalSeconds must be > 0, got %d", c.PollIntervalSeconds)
	}
	if !oneOf(c.LogLevel, ValidLogLevels) {
		return fmt.Errorf("logLevel must be one of %v, got %q", ValidLogLevels, c.LogLevel)
	}
	if !oneOf(c.BackendKind, ValidBackendKinds) {
		return fmt.Errorf("backendKind must be one of %v, got %q", ValidBackendKinds, c.BackendKind)
	}
	if c.GapCoefficient < 0 {
		return fmt.Errorf("gapCoefficient must be >= 0, got %d", c.GapCoefficient)
	}
	if c.CenterCoefficient < 0 {
		return fmt.Errorf("centerCoefficient must be >= 0, got %d", c.CenterCoefficient)
	}
	return nil
}

// Validate checks BoundsCfg constraints.
func (b *BoundsCfg) Validate() error {
	if b.WMax <= 0 || b.HMax <= 0 {
		return fmt.Errorf("wMax and hMax must be > 0, got %dx%d", b.WMax, b.HMax)
	}
	if b.WMin > b.WMax {
		return fmt.Errorf("wMin (%d) must be <= wMax (%d)", b.WMin, b.WMax)
	}
	if b.HMin > b.HMax {
		return fmt.Errorf("hMin (%d) must be <= hMax (%d)", b.HMin, b.HMax)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func oneOf(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
