// Package report renders aggregation results for humans (colored text with
// tables), machines (JSON, YAML), and browsers (go-echarts HTML charts).
// It contains formatting only; all metric logic lives in the aggregator.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/monieshop/salesight/internal/aggregator"
)

const msgNoTransactions = "No transactions found in the input; nothing to report."

// moneyPlaces is the number of decimal places for rendered amounts.
const moneyPlaces = 2

// Renderer writes a Results summary in a chosen style.
type Renderer struct {
	noColor bool
}

// NewRenderer creates a Renderer. noColor suppresses ANSI colors in the
// text format.
func NewRenderer(noColor bool) *Renderer {
	return &Renderer{noColor: noColor}
}

// RenderText writes the five labeled report sections to w. skipped is the
// parser's malformed-row count, surfaced in the summary line.
func (r *Renderer) RenderText(w io.Writer, results aggregator.Results, skipped int) error {
	var sb strings.Builder

	header := color.New(color.FgCyan, color.Bold)
	if r.noColor {
		header.DisableColor()
	}

	sb.WriteString(header.Sprint("Monieshop sales report"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Aggregated %s transactions", humanize.Comma(int64(results.Records))))

	if skipped > 0 {
		sb.WriteString(fmt.Sprintf(" (%s malformed rows skipped)", humanize.Comma(int64(skipped))))
	}

	sb.WriteString("\n\n")

	if results.Empty() {
		sb.WriteString(msgNoTransactions)
		sb.WriteString("\n")

		_, err := io.WriteString(w, sb.String())

		return err
	}

	r.writeDayMetrics(&sb, results)
	r.writeProduct(&sb, results)
	r.writeStaffTable(&sb, results)
	r.writePeakHour(&sb, results)

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func (r *Renderer) writeDayMetrics(sb *strings.Builder, results aggregator.Results) {
	if results.TopVolumeDay != nil {
		sb.WriteString(fmt.Sprintf("1. Highest sales volume in a day: %s units on %s\n",
			humanize.Comma(results.TopVolumeDay.Volume), results.TopVolumeDay.Date))
	}

	if results.TopValueDay != nil {
		sb.WriteString(fmt.Sprintf("2. Highest sales value in a day: $%s on %s\n",
			results.TopValueDay.Value.StringFixed(moneyPlaces), results.TopValueDay.Date))
	}
}

func (r *Renderer) writeProduct(sb *strings.Builder, results aggregator.Results) {
	if results.TopProduct == nil {
		return
	}

	sb.WriteString(fmt.Sprintf("3. Most sold product ID: %s with %s units\n",
		results.TopProduct.Product, humanize.Comma(results.TopProduct.Volume)))
}

func (r *Renderer) writeStaffTable(sb *strings.Builder, results aggregator.Results) {
	if len(results.TopStaffByMonth) == 0 {
		return
	}

	sb.WriteString("4. Highest sales staff ID for each month:\n")

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	tbl.AppendHeader(table.Row{"Month", "Staff ID", "Units"})

	for _, winner := range results.TopStaffByMonth {
		tbl.AppendRow(table.Row{winner.Month.String(), winner.Staff, humanize.Comma(winner.Volume)})
	}

	sb.WriteString(tbl.Render())
	sb.WriteString("\n")
}

func (r *Renderer) writePeakHour(sb *strings.Builder, results aggregator.Results) {
	if results.PeakHour == nil {
		return
	}

	sb.WriteString(fmt.Sprintf("5. Peak hour by average transaction volume: %d:00-%d:59 with an average of %.2f units\n",
		results.PeakHour.Hour, results.PeakHour.Hour, results.PeakHour.Average))
}
