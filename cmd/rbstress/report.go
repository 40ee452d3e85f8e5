package main

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReport renders one row per worker plus a totals footer.
func WriteReport(w io.Writer, results []Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Worker", "Inserted", "Rejected", "Deleted", "Verifies", "Elapsed", "Ops/s"})

	var total Result

	for _, res := range results {
		tbl.AppendRow(table.Row{
			res.Worker,
			humanize.Comma(int64(res.Inserted)),
			humanize.Comma(int64(res.Rejected)),
			humanize.Comma(int64(res.Deleted)),
			humanize.Comma(int64(res.Verifies)),
			res.Elapsed.Round(time.Millisecond),
			opsPerSecond(res),
		})

		total.Inserted += res.Inserted
		total.Rejected += res.Rejected
		total.Deleted += res.Deleted
		total.Verifies += res.Verifies
		total.Elapsed = max(total.Elapsed, res.Elapsed)
	}

	tbl.AppendFooter(table.Row{
		"Total",
		humanize.Comma(int64(total.Inserted)),
		humanize.Comma(int64(total.Rejected)),
		humanize.Comma(int64(total.Deleted)),
		humanize.Comma(int64(total.Verifies)),
		total.Elapsed.Round(time.Millisecond),
		opsPerSecond(total),
	})

	tbl.Render()
}

func opsPerSecond(res Result) string {
	if res.Elapsed <= 0 {
		return "-"
	}

	return humanize.CommafWithDigits(float64(res.Ops())/res.Elapsed.Seconds(), 0)
}
