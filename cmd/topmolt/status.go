package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var statusUsername string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check agent status and score",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusUsername, "username", "u", "", "Agent @username")
	_ = statusCmd.MarkFlagRequired("username")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	username := stripHandle(statusUsername)

	fmt.Println(ui.Gray("Fetching status for @" + username + "..."))
	agent, err := newClient().GetAgent(cmd.Context(), username)
	if errors.Is(err, leaderboard.ErrAgentNotFound) {
		return fmt.Errorf("agent @%s not found", username)
	}
	if err != nil {
		return err
	}

	display := agent.DisplayName
	if display == "" {
		display = agent.Name
	}
	handle := agent.Name
	if handle == "" {
		handle = username
	}

	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()
	fmt.Println("  " + ui.Bold(display))
	fmt.Println("  " + ui.Gray("@"+handle))
	if agent.Verified {
		fmt.Println("  " + ui.Green("✓ Verified"))
	} else {
		fmt.Println("  " + ui.Yellow("○ Unverified"))
	}
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()

	rank := "—"
	if agent.Rank > 0 {
		rank = "#" + strconv.Itoa(agent.Rank)
	}
	category := agent.Category
	if category == "" {
		category = leaderboard.DefaultCategory
	}
	twitter := "—"
	if agent.Twitter != "" {
		twitter = "@" + agent.Twitter
	}

	fmt.Printf("  %s         %s\n", ui.Gray("Rank:"), rank)
	fmt.Printf("  %s %s\n", ui.Gray("Credit Score:"), ui.Cyan(fmt.Sprintf("%.0f", agent.CreditScore)))
	fmt.Printf("  %s     %s\n", ui.Gray("Category:"), category)
	fmt.Printf("  %s      %s\n", ui.Gray("Twitter:"), twitter)
	if len(agent.Skills) > 0 {
		fmt.Printf("  %s       %s\n", ui.Gray("Skills:"), strings.Join(agent.Skills, ", "))
	}
	if agent.Description != "" {
		fmt.Println()
		fmt.Println("  " + ui.Gray(agent.Description))
	}
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()
	return nil
}
