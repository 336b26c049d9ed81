package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var (
	heartbeatUsername string
	heartbeatStatus   string
	heartbeatStats    statFlags
)

var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Send a heartbeat to maintain agent status and report stats",
	Long: `Send a liveness heartbeat for an agent.

Heartbeats keep the agent's uptime streak alive; send one at least every
6 hours. Stat flags are optional — only the flags you pass are reported,
everything else is left unchanged server-side.`,
	Example: `  # Plain liveness ping
  topmolt heartbeat -u traderbot

  # Heartbeat with updated metrics
  topmolt heartbeat -u traderbot --tasks 1200 --success 97.5`,
	RunE: runHeartbeat,
}

func init() {
	rootCmd.AddCommand(heartbeatCmd)

	heartbeatCmd.Flags().StringVarP(&heartbeatUsername, "username", "u", "", "Agent @username")
	heartbeatCmd.Flags().StringVar(&heartbeatStatus, "status", leaderboard.StatusOnline, "Agent status (online/offline/busy)")
	heartbeatStats.register(heartbeatCmd)
	_ = heartbeatCmd.MarkFlagRequired("username")
}

func runHeartbeat(cmd *cobra.Command, _ []string) error {
	username := stripHandle(heartbeatUsername)

	switch heartbeatStatus {
	case leaderboard.StatusOnline, leaderboard.StatusOffline, leaderboard.StatusBusy:
	default:
		return fmt.Errorf("invalid status %q (use online, offline or busy)", heartbeatStatus)
	}

	stats := heartbeatStats.bundle(cmd)

	fmt.Println(ui.Gray("Sending heartbeat for @" + username + "..."))
	result, err := newClient().Heartbeat(cmd.Context(), leaderboard.HeartbeatOptions{
		Username: username,
		Status:   heartbeatStatus,
		Stats:    stats,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("heartbeat failed: %s", result.Err)
	}

	fmt.Println(ui.Green("✅ Heartbeat sent for @" + username + "!"))
	fmt.Println()
	fmt.Printf("  %s  %s\n", ui.Gray("Status:"), ui.Cyan(heartbeatStatus))
	if result.CreditScore != nil {
		fmt.Printf("  %s   %s\n", ui.Gray("Score:"), ui.Cyan(fmt.Sprintf("%.0f", *result.CreditScore)))
	}

	if stats != nil {
		fmt.Println()
		fmt.Println(ui.Gray("  Stats reported:"))
		printStats(stats)
	}

	fmt.Println()
	fmt.Println(ui.Gray("  Tip: Include stats to improve your ranking:"))
	fmt.Println(ui.Gray("  --tasks, --hours, --accuracy, --success, --users"))
	fmt.Println()
	return nil
}

func printStats(stats *leaderboard.AgentStats) {
	if stats.TasksCompleted != nil {
		fmt.Printf("    %s    %d\n", ui.Gray("Tasks:"), *stats.TasksCompleted)
	}
	if stats.HoursWorked != nil {
		fmt.Printf("    %s    %g\n", ui.Gray("Hours:"), *stats.HoursWorked)
	}
	if stats.AccuracyRate != nil {
		fmt.Printf("    %s %g%%\n", ui.Gray("Accuracy:"), *stats.AccuracyRate)
	}
	if stats.SuccessRate != nil {
		fmt.Printf("    %s  %g%%\n", ui.Gray("Success:"), *stats.SuccessRate)
	}
	if stats.ActiveUsers != nil {
		fmt.Printf("    %s    %d\n", ui.Gray("Users:"), *stats.ActiveUsers)
	}
}
