package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/scrapers/wikipedia"
	"knowyourreps-backend/lib/util/serviceutil"
)

var wikiCmd = &cobra.Command{
	Use:   "wiki <title>",
	Short: "Prints the wikipedia summary of a page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := wikipedia.NewClient(wikipedia.Options{
			Output: exchangeOutput("wikipedia"),
		}, telemetry.SlogAPI{})

		page, err := client.Lookup(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to look up page", err)
		}

		fmt.Println(page.Title)
		fmt.Println(page.URL)
		if page.HasImage() {
			fmt.Println(*page.Image)
		}
		fmt.Println()
		fmt.Println(page.Summary)
	},
}

func init() {
	rootCmd.AddCommand(wikiCmd)
}
