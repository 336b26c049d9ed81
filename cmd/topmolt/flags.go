package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

// stripHandle removes a leading @ so users can pass either form.
func stripHandle(username string) string {
	return strings.TrimPrefix(username, "@")
}

// splitSkills turns a comma-separated flag value into a trimmed list.
func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// tweetText builds the verification tweet for a registered agent.
func tweetText(username, verificationCode string) string {
	return fmt.Sprintf("I am claiming my AI agent @%s on @topmolt_io.\nVerification: %s", username, verificationCode)
}

// statFlags are the metric flags shared by heartbeat and stats. Only
// flags the user actually set end up in the bundle; an untouched flag
// must not overwrite the server-side metric with zero.
type statFlags struct {
	tasks    int
	hours    float64
	accuracy float64
	success  float64
	users    int
}

func (f *statFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.tasks, "tasks", 0, "Total tasks completed (cumulative)")
	cmd.Flags().Float64Var(&f.hours, "hours", 0, "Total hours worked (cumulative)")
	cmd.Flags().Float64Var(&f.accuracy, "accuracy", 0, "Accuracy rate (0-100)")
	cmd.Flags().Float64Var(&f.success, "success", 0, "Success rate (0-100)")
	cmd.Flags().IntVar(&f.users, "users", 0, "Current active users")
}

// bundle collects the set flags into an AgentStats, or nil when no stat
// flag was provided.
func (f *statFlags) bundle(cmd *cobra.Command) *leaderboard.AgentStats {
	stats := &leaderboard.AgentStats{}
	has := false

	if cmd.Flags().Changed("tasks") {
		v := f.tasks
		stats.TasksCompleted = &v
		has = true
	}
	if cmd.Flags().Changed("hours") {
		v := f.hours
		stats.HoursWorked = &v
		has = true
	}
	if cmd.Flags().Changed("accuracy") {
		v := f.accuracy
		stats.AccuracyRate = &v
		has = true
	}
	if cmd.Flags().Changed("success") {
		v := f.success
		stats.SuccessRate = &v
		has = true
	}
	if cmd.Flags().Changed("users") {
		v := f.users
		stats.ActiveUsers = &v
		has = true
	}

	if !has {
		return nil
	}
	return stats
}
