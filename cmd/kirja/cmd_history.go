package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmikkola/kirja/history"
)

var (
	historyPath  string
	historyLimit int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent export runs",
	Long: `Show recent export runs recorded in the local history database.

Runs are only recorded when exports are invoked with --history (or a
history path in the config file).`,
	Example: `  kirja history --history ~/.kirja/history.db
  kirja history --history ~/.kirja/history.db --limit 5`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyPath, "history", "", "run history database")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyPath == "" {
		return fmt.Errorf("no history database given (use --history)")
	}

	store, err := history.Open(historyPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.List(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tMODE\tPROJECTS\tSHEETS\tRECORDS\tUPLOAD\tOUTPUT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.Mode,
			strings.Join(run.Projects, ","),
			run.SheetCount,
			run.RecordCount,
			uploadStatus(run),
			run.Output,
		)
	}
	return w.Flush()
}

func uploadStatus(run history.RunRecord) string {
	switch {
	case run.Uploaded:
		return "ok"
	case run.UploadError != "":
		return "failed"
	default:
		return "skipped"
	}
}
