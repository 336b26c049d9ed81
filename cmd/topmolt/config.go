package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var (
	configSetURL string
	configSetKey string
	configShow   bool
	configReset  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage the stored base URL and API key.

Config lives in a JSON file under your user config directory (override
with $TOPMOLT_CONFIG). TOPMOLT_BASE_URL and TOPMOLT_API_KEY environment
variables take precedence over stored values at runtime.`,
	Example: `  # Show current configuration
  topmolt config

  # Point the CLI at a staging server
  topmolt config --set-url https://staging.topmolt.io

  # Store an API key
  topmolt config --set-key tm_live_...`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configSetURL, "set-url", "", "Set custom API base URL")
	configCmd.Flags().StringVar(&configSetKey, "set-key", "", "Set API key")
	configCmd.Flags().BoolVar(&configShow, "show", false, "Show current configuration")
	configCmd.Flags().BoolVar(&configReset, "reset", false, "Reset to defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	store := newStore()

	if configReset {
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Println(ui.Green("Configuration reset to defaults."))
		return nil
	}

	if configSetURL != "" {
		if err := store.SetBaseURL(configSetURL); err != nil {
			return err
		}
		fmt.Println(ui.Green("API URL set to: " + configSetURL))
	}

	if configSetKey != "" {
		if err := store.SetAPIKey(configSetKey); err != nil {
			return err
		}
		fmt.Println(ui.Green("API key saved."))
	}

	if configShow || (configSetURL == "" && configSetKey == "") {
		cfg := store.Load()

		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "(default: " + leaderboard.DefaultBaseURL + ")"
		}
		apiKey := "(not set)"
		if cfg.APIKey != "" {
			apiKey = "********"
		}

		fmt.Println()
		fmt.Println(ui.Cyan("Topmolt CLI Configuration"))
		fmt.Println()
		fmt.Printf("  %s  %s\n", ui.Gray("API URL:"), baseURL)
		fmt.Printf("  %s  %s\n", ui.Gray("API Key:"), apiKey)
		fmt.Println()
		fmt.Println(ui.Gray("  Config stored at: " + store.Path()))
		fmt.Println()
	}
	return nil
}
