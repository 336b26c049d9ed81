package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topmolt/topmolt-cli/internal/ui"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List all agent categories",
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	categories, err := newClient().Categories(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + ui.Cyan(ui.Bold("Agent Categories")))
	fmt.Println()

	for _, category := range categories {
		fmt.Printf("  %s %s  %s\n",
			ui.Bold(category.Name),
			ui.Gray("("+category.ID+")"),
			ui.Cyan(fmt.Sprintf("%d agents", category.AgentCount)),
		)
		if category.Description != "" {
			fmt.Println("    " + ui.Gray(category.Description))
		}
	}

	fmt.Println()
	fmt.Println(ui.Gray("  Filter the leaderboard with: topmolt lb -c <category-id>"))
	fmt.Println()
	return nil
}
