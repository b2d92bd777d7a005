// Package config loads the makerhub configuration file and merges CLI
// overrides on top of it.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
)

// MoonrakerConfig holds the connection settings for a Moonraker instance.
type MoonrakerConfig struct {
	URL string `json:"url"`
}

// ISYConfig holds the connection settings for an ISY controller.
type ISYConfig struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CatalogConfig holds tool filtering applied to the compiled catalog.
// Include and Exclude are mutually exclusive.
type CatalogConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// ServeConfig holds settings for the long-running server mode.
type ServeConfig struct {
	// Refresh is a standard cron spec for periodic catalog recompilation.
	// Empty disables refresh.
	Refresh string `json:"refresh"`
}

// Config is the top-level makerhub configuration.
type Config struct {
	Moonraker MoonrakerConfig `json:"moonraker"`
	ISY       ISYConfig       `json:"isy"`
	Catalog   CatalogConfig   `json:"catalog"`
	Serve     ServeConfig     `json:"serve"`
}

// Load reads and validates a config from a JSON file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the cross-field rules: at least one device, filter modes
// mutually exclusive, ISY credentials paired with its URL, refresh spec
// parseable.
func (c *Config) Validate() error {
	if c.Moonraker.URL == "" && c.ISY.URL == "" {
		return fmt.Errorf("config: no devices configured (set moonraker.url or isy.url)")
	}

	if c.ISY.URL != "" && (c.ISY.Username == "" || c.ISY.Password == "") {
		return fmt.Errorf("config: isy.url requires isy.username and isy.password")
	}

	if len(c.Catalog.Include) > 0 && len(c.Catalog.Exclude) > 0 {
		return fmt.Errorf("config: catalog.include and catalog.exclude cannot be used together")
	}

	if c.Serve.Refresh != "" {
		if _, err := cron.ParseStandard(c.Serve.Refresh); err != nil {
			return fmt.Errorf("config: invalid serve.refresh spec %q: %w", c.Serve.Refresh, err)
		}
	}

	return nil
}

// Overrides carries the CLI flag values that take precedence over the file.
// Zero values leave the file setting untouched.
type Overrides struct {
	MoonrakerURL string
	ISYURL       string
	ISYUsername  string
	ISYPassword  string
	Include      []string
	Exclude      []string
	Refresh      string
}

// MergeOverrides merges CLI overrides into an existing Config (which may be
// nil if no --config file was provided). CLI values override file values.
// The returned Config is always non-nil and validated.
func MergeOverrides(cfg *Config, o Overrides) (*Config, error) {
	var merged Config
	if cfg != nil {
		merged = *cfg
		merged.Catalog.Include = copyList(cfg.Catalog.Include)
		merged.Catalog.Exclude = copyList(cfg.Catalog.Exclude)
	}

	if o.MoonrakerURL != "" {
		merged.Moonraker.URL = o.MoonrakerURL
	}
	if o.ISYURL != "" {
		merged.ISY.URL = o.ISYURL
	}
	if o.ISYUsername != "" {
		merged.ISY.Username = o.ISYUsername
	}
	if o.ISYPassword != "" {
		merged.ISY.Password = o.ISYPassword
	}
	if len(o.Include) > 0 && len(o.Exclude) > 0 {
		return nil, fmt.Errorf("config: --include-tools and --exclude-tools cannot be used together")
	}
	// A flag-level filter replaces the file's filter entirely, in either mode.
	if len(o.Include) > 0 {
		merged.Catalog.Include = copyList(o.Include)
		merged.Catalog.Exclude = nil
	}
	if len(o.Exclude) > 0 {
		merged.Catalog.Exclude = copyList(o.Exclude)
		merged.Catalog.Include = nil
	}
	if o.Refresh != "" {
		merged.Serve.Refresh = o.Refresh
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func copyList(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
