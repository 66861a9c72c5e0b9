package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/lib/util/serviceutil"
)

var searchCmd = &cobra.Command{
	Use:   "search [--level --state --city --party --query]",
	Short: "Lists the officials matching the given filters.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		level, _ := flags.GetString("level")
		state, _ := flags.GetString("state")
		city, _ := flags.GetString("city")
		party, _ := flags.GetString("party")
		query, _ := flags.GetString("query")

		officials, err := directory.ReadFile(*datasetPath)
		if err != nil {
			serviceutil.Fatal("failed to read dataset", err)
		}

		matches := directory.Filter(officials, directory.Criteria{
			Level: level,
			State: state,
			City:  city,
			Party: party,
			Query: query,
		})

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Office", "Party", "Level", "Location"})
		for _, o := range matches {
			t.AppendRow(table.Row{o.Name, o.Office, o.Party, o.Level, o.Location()})
		}
		t.Render()
		fmt.Printf("Showing %s\n", directory.CountLabel(len(matches)))
	},
}

func init() {
	searchCmd.Flags().String("level", directory.Any, "federal, state, local or all.")
	searchCmd.Flags().String("state", "", "Part of a state name.")
	searchCmd.Flags().String("city", "", "Part of a city name.")
	searchCmd.Flags().String("party", directory.Any, "An exact party name or all.")
	searchCmd.Flags().String("query", "", "Part of a name or office.")

	rootCmd.AddCommand(searchCmd)
}
