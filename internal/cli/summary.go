package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/telemetry-tools/perf-charter/internal/report"
	"github.com/telemetry-tools/perf-charter/internal/results"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <results-dir>",
	Short: "Print the normalized summary table to stdout",
	Long:  `Loads the raw results and prints the per-load summary table. Useful for a quick look without generating the full report.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := results.Load(args[0])
		if err != nil {
			return err
		}
		table := report.BuildSummary(recs)

		fmt.Printf("%s\n\n", results.ReportLabel(args[0]))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOAD\tTARGET MB/S\tACTUAL MB/S\tP50 MS\tP90 MS\tP99 MS\tCPU\tMEM GB\tSPANS/S\tEFF %\tERR %")
		for _, r := range table.Rows {
			fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.1f\t%.1f\t%.1f\t%.2f\t%.2f\t%.0f\t%.1f\t%.2f\n",
				r.LoadName, r.MBPerSec, r.MBPerSecActual,
				r.P50Ms, r.P90Ms, r.P99Ms,
				r.CPUCores, r.MemoryGB, r.SpansPerSec,
				r.Efficiency(), r.ErrorRate,
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
