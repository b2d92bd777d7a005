package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var flagArgs []string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Dispatch one tool call to a device",
	Long: `Dispatch a flat tool name to the device that owns it and print the
result as JSON.

Examples:
  # No arguments
  makerhub call printer_info --moonraker-url 192.168.1.25:7125

  # String argument
  makerhub call printer_run_gcode --arg script="G28" --moonraker-url 192.168.1.25:7125

  # JSON-typed arguments parse as their JSON type
  makerhub call server_cached_gcode --arg count=50 --config makerhub.json`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCall,
}

func init() {
	callCmd.Flags().StringArrayVar(&flagArgs, "arg", nil, "tool argument as key=value (repeatable; value parsed as JSON when possible)")
}

func runCall(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	toolArgs, err := parseArgEntries(flagArgs)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	h, err := buildHub(cfg)
	if err != nil {
		return err
	}

	timeout := time.Duration(flagTimeout) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	verbose("Calling %s...", args[0])
	result, err := h.Call(ctx, args[0], toolArgs)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("device did not respond within %dms", flagTimeout)
		}
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// parseArgEntries parses --arg key=value entries into a tool argument map.
// Each entry is split on the first '='. An error is returned for entries
// missing '=' or having an empty key.
func parseArgEntries(entries []string) (map[string]any, error) {
	args := make(map[string]any, len(entries))
	for _, entry := range entries {
		idx := strings.Index(entry, "=")
		if idx < 0 {
			return nil, fmt.Errorf("invalid --arg %q: expected key=value", entry)
		}
		key := entry[:idx]
		if key == "" {
			return nil, fmt.Errorf("invalid --arg %q: empty key", entry)
		}
		args[key] = parseValue(entry[idx+1:])
	}
	return args, nil
}

// parseValue attempts to parse a string as JSON. If parsing fails, the raw
// string is returned. This allows --arg count=50 to produce a number while
// --arg script=G28 stays a plain string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
