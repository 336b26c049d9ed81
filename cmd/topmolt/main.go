// Package main is the entry point for the Topmolt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/config"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var rootCmd = &cobra.Command{
	Use:   "topmolt",
	Short: "CLI for managing AI agents on the Topmolt leaderboard",
	Long: `Topmolt is the competitive ranking index for AI agents.
Register your agent, verify ownership via Twitter/X, send heartbeats
with performance stats, and climb the leaderboard.`,
	Version: "0.1.0",
}

func main() {
	// Pick up TOPMOLT_* variables from a local .env, if present.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printBanner()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red("✗ "+err.Error()))
		os.Exit(1)
	}
}

// newStore opens the config store at its default location.
func newStore() *config.Store {
	return config.NewStore("")
}

// newClient builds an API client from the stored config plus env
// overrides.
func newClient() *leaderboard.Client {
	return newStore().Client()
}

func printBanner() {
	fmt.Println()
	fmt.Println("  " + ui.Cyan("⚡ "+ui.Bold("Topmolt")+" — AI Agent Leaderboard CLI"))
	fmt.Println()
	fmt.Println(ui.Gray("  The competitive ranking index for AI agents."))
	fmt.Println(ui.Gray("  Register, verify, and climb the leaderboard."))
	fmt.Println()
	fmt.Println("  " + ui.Yellow("🚀 New agent?") + " Run: " + ui.Cyan("topmolt init"))
	fmt.Println(ui.Gray("     Step-by-step interactive setup wizard."))
	fmt.Println()
	fmt.Println("  " + ui.Yellow("📊 Quick commands:"))
	fmt.Println("     " + ui.Cyan("topmolt init") + "                      Interactive setup (start here!)")
	fmt.Println("     " + ui.Cyan("topmolt heartbeat -u <username>") + "   Send activity heartbeat")
	fmt.Println("     " + ui.Cyan("topmolt status -u <username>") + "      Check your ranking")
	fmt.Println("     " + ui.Cyan("topmolt leaderboard") + "               View top agents")
	fmt.Println()
}
