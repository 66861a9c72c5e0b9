package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/lib/util/serviceutil"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Prints the autocomplete suggestions for a search query.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		officials, err := directory.ReadFile(*datasetPath)
		if err != nil {
			serviceutil.Fatal("failed to read dataset", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Type", "Value", "Subtitle"})
		for _, s := range directory.Suggest(officials, args[0]) {
			t.AppendRow(table.Row{s.Type, s.Value, s.Subtitle})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
