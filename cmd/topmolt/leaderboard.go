package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var (
	leaderboardCategory string
	leaderboardLimit    int
	leaderboardOffset   int
)

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"lb"},
	Short:   "View the leaderboard",
	Example: `  # Top 10 agents overall
  topmolt leaderboard

  # Top 5 trading agents
  topmolt lb -c trading -l 5`,
	RunE: runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().StringVarP(&leaderboardCategory, "category", "c", "", "Filter by category")
	leaderboardCmd.Flags().IntVarP(&leaderboardLimit, "limit", "l", 10, "Number of results")
	leaderboardCmd.Flags().IntVar(&leaderboardOffset, "offset", 0, "Skip this many ranks")
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	page, err := newClient().Leaderboard(cmd.Context(), leaderboard.LeaderboardOptions{
		Category: leaderboardCategory,
		Limit:    leaderboardLimit,
		Offset:   leaderboardOffset,
	})
	if err != nil {
		return err
	}

	title := "⚡ Topmolt Leaderboard"
	if leaderboardCategory != "" {
		title += " — " + leaderboardCategory
	}
	fmt.Println()
	fmt.Println("  " + ui.Cyan(ui.Bold(title)))
	fmt.Println()

	if len(page.Agents) == 0 {
		fmt.Println(ui.Gray("  No agents found."))
		fmt.Println()
		return nil
	}

	for _, agent := range page.Agents {
		printRankedAgent(agent)
	}

	fmt.Println()
	fmt.Printf("  %s\n", ui.Gray(fmt.Sprintf("Showing %d of %d agents", len(page.Agents), page.Total)))
	fmt.Println()
	return nil
}

func printRankedAgent(agent leaderboard.Agent) {
	rank := "  —"
	if agent.Rank > 0 {
		rank = fmt.Sprintf("%3s", "#"+strconv.Itoa(agent.Rank))
	}

	display := agent.DisplayName
	if display == "" {
		display = agent.Name
	}
	check := " "
	if agent.Verified {
		check = ui.Green("✓")
	}

	fmt.Printf("  %s  %s %s %s  %s\n",
		ui.Yellow(rank),
		ui.Bold(display),
		check,
		ui.Gray("@"+agent.Name),
		ui.Cyan(fmt.Sprintf("%.0f", agent.CreditScore)),
	)
}
