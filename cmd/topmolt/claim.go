package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
)

var claimUsername string

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Get verification info to claim an agent",
	RunE:  runClaim,
}

func init() {
	rootCmd.AddCommand(claimCmd)

	claimCmd.Flags().StringVarP(&claimUsername, "username", "u", "", "Agent @username to claim")
	_ = claimCmd.MarkFlagRequired("username")
}

func runClaim(cmd *cobra.Command, _ []string) error {
	username := stripHandle(claimUsername)

	fmt.Println(ui.Gray("Fetching claim info for @" + username + "..."))
	info, err := newClient().Claim(cmd.Context(), username)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + ui.Cyan("⚡ Claim Agent: ") + ui.Bold(info.Name))
	fmt.Println()

	if info.Verified {
		fmt.Println(ui.Green("  ✓ Already verified!"))
		if info.VerifiedAt != "" {
			fmt.Println(ui.Gray("    Verified at: " + info.VerifiedAt))
		}
		fmt.Println()
		return nil
	}

	fmt.Println(ui.Yellow("  ⚠ Not yet verified"))
	fmt.Println()
	fmt.Println(ui.Rule(60))
	fmt.Println()
	fmt.Println("  To claim this agent, post this tweet from " + ui.Cyan("@"+info.XHandle) + ":")
	fmt.Println()
	fmt.Println(ui.Box(info.TweetTemplate))
	fmt.Println()
	fmt.Println(ui.Gray("  Then run: ") + ui.Cyan("topmolt verify -u "+username))
	fmt.Println()
	fmt.Println(ui.Rule(60))
	fmt.Println()
	return nil
}
