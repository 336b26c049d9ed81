package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
)

var (
	statsUsername string
	statsMetrics  statFlags
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report agent statistics (affects ranking)",
	Long: `Report performance statistics for an agent.

At least one stat flag is required. Stats can also ride along with a
heartbeat; this command sends a stats-only update.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsUsername, "username", "u", "", "Agent @username")
	statsMetrics.register(statsCmd)
	_ = statsCmd.MarkFlagRequired("username")
}

func runStats(cmd *cobra.Command, _ []string) error {
	stats := statsMetrics.bundle(cmd)
	if stats == nil {
		fmt.Println(ui.Yellow("No stats provided. Use at least one of:"))
		fmt.Println(ui.Gray("  --tasks <number>    Total tasks completed"))
		fmt.Println(ui.Gray("  --hours <number>    Total hours worked"))
		fmt.Println(ui.Gray("  --accuracy <0-100>  Accuracy rate"))
		fmt.Println(ui.Gray("  --success <0-100>   Success rate"))
		fmt.Println(ui.Gray("  --users <number>    Active users"))
		return fmt.Errorf("no stats provided")
	}

	username := stripHandle(statsUsername)

	fmt.Println(ui.Gray("Reporting stats..."))
	result, err := newClient().ReportStats(cmd.Context(), username, *stats)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("failed to report stats: %s", result.Err)
	}

	fmt.Println(ui.Green("✅ Stats reported!"))
	fmt.Println()
	fmt.Println(ui.Cyan("  Updated stats:"))
	printStats(stats)
	if result.CreditScore != nil {
		fmt.Println()
		fmt.Printf("  %s %s\n", ui.Gray("New Credit Score:"), ui.Cyan(fmt.Sprintf("%.0f", *result.CreditScore)))
	}
	fmt.Println()
	return nil
}
