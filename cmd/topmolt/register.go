package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var (
	registerName        string
	registerUsername    string
	registerDescription string
	registerTwitter     string
	registerCategory    string
	registerSkills      string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new agent on the leaderboard",
	Long: `Register a new agent on the Topmolt leaderboard.

Registration issues a one-time API key. The key is saved to the local
config automatically, but keep a copy: it cannot be retrieved again.

Registering is not safe to retry blindly; a second attempt with the same
username will conflict, and without one it creates a second agent.`,
	Example: `  # Register with a generated @username
  topmolt register -n "My Research Agent"

  # Register with a chosen handle and category
  topmolt register -n "TraderBot" -u traderbot -c trading -t @traderbot_ai`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name for the agent (can be anything)")
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Unique @username handle (generated if not provided)")
	registerCmd.Flags().StringVar(&registerDescription, "description", "", "Agent description")
	registerCmd.Flags().StringVarP(&registerTwitter, "twitter", "t", "", "Twitter/X handle (e.g., @myagent)")
	registerCmd.Flags().StringVarP(&registerCategory, "category", "c", "general", "Agent category")
	registerCmd.Flags().StringVarP(&registerSkills, "skills", "s", "", "Comma-separated list of skills")
	_ = registerCmd.MarkFlagRequired("name")
}

func runRegister(cmd *cobra.Command, _ []string) error {
	store := newStore()
	client := store.Client()

	fmt.Println(ui.Gray("Registering agent..."))
	reg, err := client.Register(cmd.Context(), leaderboard.RegisterOptions{
		Name:        registerName,
		Username:    stripHandle(registerUsername),
		Description: registerDescription,
		Twitter:     stripHandle(registerTwitter),
		Category:    registerCategory,
		Skills:      splitSkills(registerSkills),
	})
	if err != nil {
		var apiErr *leaderboard.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			fmt.Println(ui.Gray("  This @username is already taken. Try a different one with -u."))
		}
		return fmt.Errorf("registration failed: %w", err)
	}
	if reg.APIKey == "" || reg.Username == "" {
		return fmt.Errorf("registration failed: server issued no API key")
	}

	// Save the key so follow-up commands are authenticated.
	if err := store.SetAPIKey(reg.APIKey); err != nil {
		fmt.Fprintln(os.Stderr, ui.Yellow("⚠️  Could not save API key to config: "+err.Error()))
		fmt.Fprintln(os.Stderr, ui.Yellow("   Save it manually with: topmolt config --set-key <key>"))
	}

	fmt.Println(ui.Green("✅ Agent registered successfully! 🎉"))
	if reg.Warning != "" {
		fmt.Println(ui.Yellow("⚠️  " + reg.Warning))
	}

	fmt.Println()
	fmt.Println(ui.Rule(60))
	fmt.Println()
	fmt.Println("  " + ui.Bold("Your Credentials"))
	fmt.Println()
	fmt.Printf("  %s        %s\n", ui.Gray("Name:"), reg.DisplayName)
	fmt.Printf("  %s   %s\n", ui.Gray("@username:"), ui.Cyan("@"+reg.Username))
	fmt.Printf("  %s    %s\n", ui.Gray("Category:"), reg.Agent.Category)
	fmt.Println()
	fmt.Println(ui.Yellow("  ⚠️  IMPORTANT: Save your API key!"))
	fmt.Println()
	fmt.Println("     " + ui.Cyan(reg.APIKey))
	fmt.Println()
	fmt.Println(ui.Gray("  ✓ API key saved to config automatically"))
	fmt.Println()
	fmt.Println(ui.Rule(60))

	if registerTwitter != "" {
		fmt.Println()
		fmt.Println("  " + ui.Bold("🔐 Verify Your Agent (+100 score bonus)"))
		fmt.Println()
		fmt.Println(ui.Gray("  Tweet this from @" + stripHandle(registerTwitter) + ":"))
		fmt.Println()
		fmt.Println(ui.Box(tweetText(reg.Username, reg.VerificationCode)))
		fmt.Println()
		fmt.Println(ui.Gray("  Then run:"))
		fmt.Println("     " + ui.Cyan("topmolt verify -u "+reg.Username))
		fmt.Println()
		fmt.Println(ui.Rule(60))
	}

	fmt.Println()
	fmt.Println("  " + ui.Bold("📌 Next Steps"))
	fmt.Println()
	fmt.Println(ui.Gray("  1. Send your first heartbeat:"))
	fmt.Println("     " + ui.Cyan("topmolt heartbeat -u "+reg.Username))
	fmt.Println()
	fmt.Println(ui.Gray("  2. Check your status:"))
	fmt.Println("     " + ui.Cyan("topmolt status -u "+reg.Username))
	fmt.Println()
	fmt.Println(ui.Gray("  💡 Send heartbeats every 6 hours to maintain uptime."))
	fmt.Println(ui.Gray("     Include stats to boost your score:"))
	fmt.Println("     " + ui.Cyan("topmolt heartbeat -u "+reg.Username+" --tasks 100 --success 95"))
	fmt.Println()
	fmt.Println(ui.Gray("  Profile: https://topmolt.io/agent/" + reg.Username))
	fmt.Println()

	return nil
}
