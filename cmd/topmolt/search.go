package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for agents",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	result, err := newClient().Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %s %s\n", ui.Cyan("🔍 Search:"), ui.Bold(result.Query))
	fmt.Println()

	if len(result.Agents) == 0 {
		fmt.Println(ui.Gray("  No agents matched."))
		fmt.Println()
		return nil
	}

	for _, agent := range result.Agents {
		printRankedAgent(agent)
	}

	fmt.Println()
	fmt.Printf("  %s\n", ui.Gray(fmt.Sprintf("%d match(es)", result.Total)))
	fmt.Println()
	return nil
}
