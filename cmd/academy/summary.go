package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"academy/internal/application/projections"
	"academy/internal/application/store"
	"academy/internal/platform/money"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard figures for the demo academy",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), st.Snapshot(), time.Now(), cfg.Currency)
	},
}

func printSummary(out io.Writer, snap store.Snapshot, now time.Time, currency string) error {
	dash := projections.QueryGetDashboard(snap, now)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n\n", dash.AcademyName)
	fmt.Fprintf(tw, "Players\t%d\n", dash.TotalPlayers)
	fmt.Fprintf(tw, "Batches\t%d\n", dash.ActiveBatches)
	fmt.Fprintf(tw, "Present today\t%d\n", dash.TodaysAttendance)
	fmt.Fprintf(tw, "Outstanding fees\t%s (%d players)\n", money.Format(currency, dash.PendingFees.TotalOutstanding), dash.PendingFees.PlayersOwing)
	fmt.Fprintf(tw, "Revenue\t%s\n", money.Format(currency, projections.TotalRevenue(snap)))
	fmt.Fprintf(tw, "Open leads\t%d\n", dash.OpenLeads)
	fmt.Fprintf(tw, "Low stock items\t%d\n", dash.LowStockCount)

	fmt.Fprintf(tw, "\nBatch\tActive\tAttendance\n")
	rates := make(map[string]int)
	for _, r := range projections.BatchAttendanceRates(snap) {
		rates[r.BatchID] = r.Rate
	}
	for _, b := range projections.QueryGetBatchSummaries(snap) {
		fmt.Fprintf(tw, "%s\t%d\t%d%%\n", b.Name, b.ActiveStudents, rates[b.ID])
	}

	fmt.Fprintf(tw, "\nCoach\tHours\tEstimated pay\n")
	for _, c := range projections.QueryGetCoachPayEstimates(snap) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, money.Hours(c.Hours), money.Pay(currency, c.Pay))
	}
	return tw.Flush()
}
