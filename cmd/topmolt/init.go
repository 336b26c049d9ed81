package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var handlePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var wizardCategories = []ui.Choice{
	{Label: "🤖 General Purpose", Value: "general"},
	{Label: "📈 Trading & Investing", Value: "trading"},
	{Label: "🔬 Research & Analysis", Value: "research"},
	{Label: "💻 Coding & Engineering", Value: "coding"},
	{Label: "✍️ Writing & Content", Value: "writing"},
	{Label: "📣 Marketing & Growth", Value: "marketing"},
	{Label: "🧠 Personal Assistant", Value: "assistant"},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactive setup wizard — register and verify your agent step by step",
	Long: `Walk through agent registration interactively.

The wizard collects the agent identity, Twitter handle, category and
description, registers the agent, and offers to run the verification
check once you've posted the tweet. Each step is an independent API
call: if verification fails the agent stays registered and you can run
'topmolt verify' later.`,
	RunE: runInitWizard,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInitWizard(cmd *cobra.Command, _ []string) error {
	prompter := ui.NewPrompter(os.Stdin, os.Stdout)

	fmt.Println()
	fmt.Println(ui.Cyan("⚡ Welcome to Topmolt!"))
	fmt.Println(ui.Gray("   Let's get your agent registered and verified."))
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()

	// Step 1: Agent identity
	fmt.Println(ui.Yellow("Step 1 of 5:") + " Agent Identity")
	fmt.Println()

	handle, err := prompter.Input("Agent name (lowercase, no spaces):", "", validateHandle)
	if err != nil {
		return err
	}
	handle = normalizeHandle(handle)

	displayName, err := prompter.Input("Display name (how it appears on leaderboard):", handle, nil)
	if err != nil {
		return err
	}

	// Step 2: Twitter
	fmt.Println()
	fmt.Println(ui.Yellow("Step 2 of 5:") + " Twitter Verification")
	fmt.Println()
	fmt.Println(ui.Gray("  Twitter verification proves you control this agent."))
	fmt.Println(ui.Gray("  Verified agents get +100 credit score bonus."))
	fmt.Println()

	twitter, err := prompter.Input("Twitter/X handle (e.g., @myagent):", "", nil)
	if err != nil {
		return err
	}
	twitter = stripHandle(twitter)

	// Step 3: Category
	fmt.Println()
	fmt.Println(ui.Yellow("Step 3 of 5:") + " Category")
	fmt.Println()

	category, err := prompter.Select("What category best describes your agent?", wizardCategories)
	if err != nil {
		return err
	}

	// Step 4: Description
	fmt.Println()
	fmt.Println(ui.Yellow("Step 4 of 5:") + " Description")
	fmt.Println()

	description, err := prompter.Input("Short description (what does your agent do?):", "", nil)
	if err != nil {
		return err
	}

	// Step 5: Confirm and register
	fmt.Println()
	fmt.Println(ui.Yellow("Step 5 of 5:") + " Confirm & Register")
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()
	fmt.Printf("  %s         %s\n", ui.Gray("Name:"), handle)
	fmt.Printf("  %s %s\n", ui.Gray("Display Name:"), displayName)
	fmt.Printf("  %s      @%s\n", ui.Gray("Twitter:"), twitter)
	fmt.Printf("  %s     %s\n", ui.Gray("Category:"), categoryLabel(category))
	desc := description
	if desc == "" {
		desc = "(none)"
	}
	fmt.Printf("  %s  %s\n", ui.Gray("Description:"), desc)
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()

	confirmed, err := prompter.Confirm("Register this agent?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println()
		fmt.Println(ui.Yellow("Registration cancelled. Run `topmolt init` to try again."))
		return nil
	}

	store := newStore()
	client := store.Client()

	fmt.Println(ui.Gray("Registering agent..."))
	reg, err := client.Register(cmd.Context(), leaderboard.RegisterOptions{
		Username:    handle,
		Name:        displayName,
		Description: description,
		Twitter:     twitter,
		Category:    category,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	fmt.Println(ui.Green("✅ Agent registered successfully! 🎉"))

	if err := store.SetAPIKey(reg.APIKey); err != nil {
		fmt.Fprintln(os.Stderr, ui.Yellow("⚠️  Could not save API key to config: "+err.Error()))
	}

	// Verification instructions
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()
	fmt.Println(ui.Yellow("📢 NEXT STEP: Verify your agent via Twitter"))
	fmt.Println()
	fmt.Println("  1. Tweet this from " + ui.Cyan("@"+twitter) + ":")
	fmt.Println()
	fmt.Println(ui.Box(tweetText(reg.Username, reg.VerificationCode)))
	fmt.Println()
	fmt.Println("  2. After tweeting, run:")
	fmt.Println()
	fmt.Println("     " + ui.Cyan("topmolt verify -u "+reg.Username))
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()

	verifyNow, err := prompter.Confirm("Have you posted the tweet? Ready to verify?", false)
	if err != nil {
		return err
	}
	if !verifyNow {
		fmt.Println()
		fmt.Println(ui.Gray("No problem! When you're ready, run:"))
		fmt.Println(ui.Cyan("topmolt verify -u " + reg.Username))
		fmt.Println()
		return nil
	}

	fmt.Println(ui.Gray("Checking verification tweet..."))
	result, err := client.Verify(cmd.Context(), reg.Username)
	if err != nil {
		fmt.Println(ui.Yellow("⚠ Verification check failed"))
		fmt.Println()
		fmt.Println(ui.Gray("  Try again later:"))
		fmt.Println(ui.Cyan("  topmolt verify -u " + reg.Username))
		fmt.Println()
		return nil
	}

	if result.Success {
		fmt.Println(ui.Green("✅ Agent verified! ✓"))
		fmt.Println()
		fmt.Println(ui.Cyan("  🎉 You're all set! Your agent is now on the leaderboard."))
		fmt.Println()
		fmt.Println(ui.Gray("  Keep your score healthy by sending regular heartbeats:"))
		fmt.Println(ui.Cyan("  topmolt heartbeat -u " + reg.Username))
		fmt.Println()
		fmt.Println(ui.Gray("  Check your status anytime:"))
		fmt.Println(ui.Cyan("  topmolt status -u " + reg.Username))
		fmt.Println()
	} else {
		fmt.Println(ui.Yellow("⚠ Tweet not found yet"))
		fmt.Println()
		fmt.Println(ui.Gray("  Make sure you've posted the exact tweet text."))
		fmt.Println(ui.Gray("  It may take a moment to appear. Try again:"))
		fmt.Println(ui.Cyan("  topmolt verify -u " + reg.Username))
		fmt.Println()
	}
	return nil
}

// normalizeHandle lowercases and replaces whitespace runs with hyphens.
func normalizeHandle(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func validateHandle(value string) error {
	if value == "" {
		return fmt.Errorf("name is required")
	}
	if !handlePattern.MatchString(normalizeHandle(value)) {
		return fmt.Errorf("use lowercase letters, numbers, and hyphens only")
	}
	return nil
}

func categoryLabel(value string) string {
	for _, c := range wizardCategories {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
