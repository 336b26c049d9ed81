package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

var (
	meName     string
	meBio      string
	meLocation string
	meTwitter  string
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "View or update your operator profile",
	Long: `Show the operator profile behind the configured API key.

Pass any of --name, --bio, --location or --twitter to update those
fields; the others are left unchanged.`,
	RunE: runMe,
}

func init() {
	rootCmd.AddCommand(meCmd)

	meCmd.Flags().StringVar(&meName, "name", "", "Update display name")
	meCmd.Flags().StringVar(&meBio, "bio", "", "Update bio")
	meCmd.Flags().StringVar(&meLocation, "location", "", "Update location")
	meCmd.Flags().StringVar(&meTwitter, "twitter", "", "Update Twitter handle")
}

func runMe(cmd *cobra.Command, _ []string) error {
	client := newClient()

	updating := cmd.Flags().Changed("name") || cmd.Flags().Changed("bio") ||
		cmd.Flags().Changed("location") || cmd.Flags().Changed("twitter")

	var operator *leaderboard.Operator
	var err error
	if updating {
		fmt.Println(ui.Gray("Updating operator profile..."))
		operator, err = client.UpdateOperator(cmd.Context(), leaderboard.OperatorUpdate{
			Name:     meName,
			Bio:      meBio,
			Location: meLocation,
			Twitter:  stripHandle(meTwitter),
		})
	} else {
		fmt.Println(ui.Gray("Fetching operator profile..."))
		operator, err = client.Operator(cmd.Context())
	}
	if err != nil {
		return err
	}

	if updating {
		fmt.Println(ui.Green("✅ Profile updated!"))
	}

	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()
	fmt.Println("  " + ui.Bold(operator.Name))
	fmt.Println("  " + ui.Gray("@"+operator.Handle))
	if operator.Verified {
		fmt.Println("  " + ui.Green("✓ Verified operator"))
	}
	fmt.Println()
	if operator.Bio != "" {
		fmt.Printf("  %s      %s\n", ui.Gray("Bio:"), operator.Bio)
	}
	if operator.Location != "" {
		fmt.Printf("  %s %s\n", ui.Gray("Location:"), operator.Location)
	}
	if operator.Twitter != "" {
		fmt.Printf("  %s  %s\n", ui.Gray("Twitter:"), "@"+operator.Twitter)
	}
	fmt.Println()
	fmt.Println(ui.Rule(50))
	fmt.Println()
	return nil
}
