package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/makerhub/makerhub/internal/config"
	"github.com/makerhub/makerhub/internal/hub"
	"github.com/makerhub/makerhub/internal/isy"
	"github.com/makerhub/makerhub/internal/moonraker"
)

// Connection and filtering flags shared by every subcommand.
var (
	flagConfig       string
	flagMoonrakerURL string
	flagISYURL       string
	flagISYUsername  string
	flagISYPassword  string
	flagIncludeTools string
	flagExcludeTools string
	flagTimeout      int
	flagVerbose      bool
	flagQuiet        bool
)

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&flagConfig, "config", "", "path to a makerhub JSON config file")
	f.StringVar(&flagMoonrakerURL, "moonraker-url", "", "Moonraker base URL (host:port is enough, http assumed)")
	f.StringVar(&flagISYURL, "isy-url", "", "ISY controller base URL (http:// or https:// required)")
	f.StringVar(&flagISYUsername, "isy-username", "", "ISY basic auth username")
	f.StringVar(&flagISYPassword, "isy-password", "", "ISY basic auth password")
	f.StringVar(&flagIncludeTools, "include-tools", "", "only expose these tools (comma-separated flat names)")
	f.StringVar(&flagExcludeTools, "exclude-tools", "", "hide these tools (comma-separated flat names)")
	f.IntVar(&flagTimeout, "timeout", 30000, "timeout in milliseconds for device requests")
	f.BoolVar(&flagVerbose, "verbose", false, "show detailed progress")
	f.BoolVar(&flagQuiet, "quiet", false, "suppress all output except errors and results")
}

func validateFlags() error {
	if flagIncludeTools != "" && flagExcludeTools != "" {
		return fmt.Errorf("--include-tools and --exclude-tools cannot be used together")
	}
	if flagVerbose && flagQuiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	return nil
}

// loadConfig merges the optional config file with the CLI flags. Flags win.
// With no --config, ~/.makerhub/config.json is used when it exists.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".makerhub", "config.json")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	var fileCfg *config.Config
	if path != "" {
		verbose("Loading config from %s...", path)
		var err error
		fileCfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	return config.MergeOverrides(fileCfg, config.Overrides{
		MoonrakerURL: flagMoonrakerURL,
		ISYURL:       flagISYURL,
		ISYUsername:  flagISYUsername,
		ISYPassword:  flagISYPassword,
		Include:      hub.ParseToolList(flagIncludeTools),
		Exclude:      hub.ParseToolList(flagExcludeTools),
	})
}

// buildHub constructs the device clients named by the merged config and
// assembles them into a hub.
func buildHub(cfg *config.Config) (*hub.Hub, error) {
	opts := hub.Options{
		Include: cfg.Catalog.Include,
		Exclude: cfg.Catalog.Exclude,
	}

	if cfg.Moonraker.URL != "" {
		verbose("Connecting Moonraker at %s...", cfg.Moonraker.URL)
		mc, err := moonraker.New(cfg.Moonraker.URL)
		if err != nil {
			return nil, err
		}
		opts.Moonraker = mc
	}

	if cfg.ISY.URL != "" {
		verbose("Connecting ISY at %s...", cfg.ISY.URL)
		ic, err := isy.New(cfg.ISY.URL, cfg.ISY.Username, cfg.ISY.Password)
		if err != nil {
			return nil, err
		}
		opts.ISY = ic
	}

	h, err := hub.New(opts)
	if err != nil {
		return nil, err
	}
	verbose("Compiled %d tools", len(h.Catalog()))
	return h, nil
}

// verbose prints a message if --verbose is set.
func verbose(format string, args ...interface{}) {
	if flagVerbose {
		fmt.Printf(format+"\n", args...)
	}
}
