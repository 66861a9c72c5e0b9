package commands

import (
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"knowyourreps-backend/internal/components/chrono"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/enrich"
	"knowyourreps-backend/internal/scrapers/wikidata"
	"knowyourreps-backend/lib/util/serviceutil"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Refreshes parts of the dataset from public sources.",
}

var mayorsCmd = &cobra.Command{
	Use:   "mayors [--state California --state-qid Q99] [--dry-run]",
	Short: "Replaces the local officials of a state with its current mayors from wikidata.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := cmd.Flags().GetString("state")
		regionID, _ := cmd.Flags().GetString("state-qid")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		tel := telemetry.SlogAPI{}
		source := wikidata.NewClient(wikidata.Options{
			Output: exchangeOutput("wikidata"),
		}, tel)

		job := enrich.Job{
			Source:   source,
			Clock:    chrono.StandardImpl{},
			Tel:      tel,
			Dataset:  *datasetPath,
			State:    state,
			RegionID: regionID,
			Pause:    enrich.DefaultPause,
			DryRun:   dryRun,
		}
		result, err := job.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to update mayors", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"City", "Mayor", "Party", "Photo"})
		for _, m := range result.Mayors {
			photo := ""
			if m.PhotoURL != "" {
				photo = "yes"
			}
			t.AppendRow(table.Row{m.City, m.Name, m.Party, photo})
		}
		t.AppendFooter(table.Row{"", "", "Mayors", len(result.Mayors)})
		t.Render()

		if !result.Written {
			slog.Info("dry run, nothing written", "removed", result.Removed, "total", result.Total)
			return
		}
		slog.Info(
			"updated dataset",
			"dataset", *datasetPath,
			"snapshot", result.SnapshotPath,
			"mayors", len(result.Mayors),
			"removed", result.Removed,
			"total", result.Total,
		)
	},
}

func init() {
	mayorsCmd.Flags().String("state", enrich.DefaultState, "The state whose local officials are replaced.")
	mayorsCmd.Flags().String("state-qid", enrich.DefaultRegionID, "The wikidata entity id of the state.")
	mayorsCmd.Flags().Bool("dry-run", false, "Fetch and merge without writing the dataset or snapshot.")

	enrichCmd.AddCommand(mayorsCmd)
	rootCmd.AddCommand(enrichCmd)
}
