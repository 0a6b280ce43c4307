package export

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/papercall-export/models"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// RenderSummary formats per-state counts and the output location.
func RenderSummary(r *Result) string {
	var sb strings.Builder

	switch r.Mode {
	case models.OutputModeExcel:
		rows := make([][]string, 0, len(r.Workbook.States)+1)
		for _, st := range r.Workbook.States {
			rows = append(rows, []string{
				string(st.State),
				fmt.Sprintf("%d", st.Submissions),
				fmt.Sprintf("%d", st.Comments),
				fmt.Sprintf("%d", st.Feedback),
			})
		}
		total := r.Workbook.Totals()
		rows = append(rows, []string{
			"total",
			fmt.Sprintf("%d", total.Submissions),
			fmt.Sprintf("%d", total.Comments),
			fmt.Sprintf("%d", total.Feedback),
		})
		sb.WriteString(renderTable(
			[]string{"State", "Submissions", "Rating comments", "Feedback"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		))
		fmt.Fprintf(&sb, "\nWorkbook saved to: %s (%s)\n", r.Output, humanize.Bytes(uint64(r.Bytes)))

	case models.OutputModeJekyll:
		rows := make([][]string, 0, len(r.Documents.States)+1)
		for _, st := range r.Documents.States {
			rows = append(rows, []string{
				string(st.State),
				fmt.Sprintf("%d", st.Written),
				fmt.Sprintf("%d", st.Skipped),
			})
		}
		total := r.Documents.Totals()
		rows = append(rows, []string{
			"total",
			fmt.Sprintf("%d", total.Written),
			fmt.Sprintf("%d", total.Skipped),
		})
		sb.WriteString(renderTable(
			[]string{"State", "Documents", "Skipped"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight},
		))
		fmt.Fprintf(&sb, "\nDocuments saved under: %s\n", r.Output)
	}

	return sb.String()
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render() + "\n"
}
