package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/lib/util/restyutil"
)

var (
	datasetPath *string
	verbose     *bool
)

var rootCmd = &cobra.Command{
	Use:   "reps-cli",
	Short: "reps-cli maintains and queries the officials dataset.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func init() {
	datasetPath = rootCmd.PersistentFlags().String("dataset", "public/politicians.json", "The officials dataset to operate on.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and dump http exchanges to .dev/resty.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// exchangeOutput returns where http exchanges of client are dumped, nil
// unless verbose.
func exchangeOutput(client string) telemetry.ExchangeOutput {
	if !*verbose {
		return nil
	}
	output, err := restyutil.NewFilesystemOutput(".dev/resty/" + client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	return output
}
