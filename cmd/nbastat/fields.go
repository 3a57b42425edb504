package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aberghammer-analytics/nbastatgo/internal/cli"
	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
)

func init() {
	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "Show the field registry",
		Long:  `Show which columns are classified as IDs, dates, durations, integers, floats, and strings, plus the legacy-name mappings applied during standardization.`,
		RunE:  runFields,
	}

	rootCmd.AddCommand(fieldsCmd)
}

func runFields(_ *cobra.Command, _ []string) error {
	fields := registry.DefaultFields()

	fmt.Println(cli.FormatTitle("Field registry"))

	byCategory := fields.ByCategory()
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Printf("\n%s\n", cli.TitleStyle.Render(cat))
		for _, name := range byCategory[cat] {
			fmt.Printf("  %s\n", name)
		}
	}

	fmt.Printf("\n%s\n", cli.TitleStyle.Render("legacy name mappings"))
	renames := fields.Renames()
	fromNames := make([]string, 0, len(renames))
	for from := range renames {
		fromNames = append(fromNames, from)
	}
	sort.Strings(fromNames)
	for _, from := range fromNames {
		fmt.Printf("  %s → %s\n", from, renames[from])
	}

	fmt.Printf("\n%s\n", cli.TitleStyle.Render("date formats (priority order)"))
	for _, layout := range fields.DateFormats() {
		fmt.Printf("  %s\n", layout)
	}
	return nil
}
