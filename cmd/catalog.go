package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/makerhub/makerhub/internal/catalog"
)

var flagOutput string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Compile and print the tool catalog",
	Long: `Compile the configured devices' commands into a flat tool catalog and
print it as an OpenAI function-calling tool array.

Examples:
  # Print the catalog for a printer
  makerhub catalog --moonraker-url 192.168.1.25:7125

  # Both devices, excluding destructive tools
  makerhub catalog --config makerhub.json --exclude-tools printer_emergency_stop,isy_reboot

  # Write to a file for an agent harness
  makerhub catalog --config makerhub.json --output tools.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagOutput, "output", "", "write the tool JSON to this file instead of stdout")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
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

	tools := h.Catalog()
	data, err := json.MarshalIndent(catalog.OpenAITools(tools), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	data = append(data, '\n')

	if flagOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(flagOutput, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", flagOutput, err)
	}

	if !flagQuiet {
		fmt.Printf("Wrote %d tools to %s\n", len(tools), flagOutput)
		fmt.Println()
		fmt.Println("Tools:")
		for _, t := range tools {
			fmt.Printf("  - %s: %s\n", t.Name, truncate(t.Description, 72))
		}
	}
	return nil
}

// truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Truncation counts runes, not bytes, so multi-byte descriptions
// are never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
