package spreadsheet

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/papercall-export/models"
	"github.com/xuri/excelize/v2"
)

// Options configures a workbook render.
type Options struct {
	States         []models.State
	CommentColumns int
	WebURL         string
	HeaderStyle    *excelize.Style
}

// DefaultHeaderStyle is bold blue Verdana.
func DefaultHeaderStyle() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{Family: "Verdana", Color: "0000FF", Bold: true},
	}
}

// StateStats counts what one sheet received.
type StateStats struct {
	State       models.State
	Submissions int
	Comments    int
	Feedback    int
}

// Stats aggregates the counts of a workbook render.
type Stats struct {
	States []StateStats
}

// Totals sums the per-state counts.
func (s Stats) Totals() StateStats {
	var total StateStats
	for _, st := range s.States {
		total.Submissions += st.Submissions
		total.Comments += st.Comments
		total.Feedback += st.Feedback
	}
	return total
}

// SheetName returns the sheet name used for state.
func SheetName(state models.State) string {
	return strings.ToUpper(string(state))
}

// Permalink returns the web link to a submission.
func Permalink(webURL string, eventID, submissionID int64) string {
	return fmt.Sprintf("%s/cfp/%d/submissions/%d", strings.TrimRight(webURL, "/"), eventID, submissionID)
}

// Render builds a workbook with one sheet per state in opts.States. Every
// state gets a sheet with a header row even when it has no submissions.
// The caller owns the returned file and must Close it.
func Render(logger *slog.Logger, export *models.Export, opts Options) (*excelize.File, Stats, error) {
	var stats Stats

	entries := make(map[models.State][]models.Entry, len(export.Groups))
	for _, g := range export.Groups {
		entries[g.State] = g.Entries
	}

	style := opts.HeaderStyle
	if style == nil {
		style = DefaultHeaderStyle()
	}

	f := excelize.NewFile()
	styleID, err := f.NewStyle(style)
	if err != nil {
		_ = f.Close()
		return nil, stats, fmt.Errorf("failed to create header style: %w", err)
	}

	header := Header(opts.CommentColumns)
	for i, state := range opts.States {
		sheet := SheetName(state)
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			_, err = f.NewSheet(sheet)
		}
		if err != nil {
			_ = f.Close()
			return nil, stats, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := writeHeader(f, sheet, header, styleID); err != nil {
			_ = f.Close()
			return nil, stats, err
		}

		st := StateStats{State: state}
		for n, entry := range entries[state] {
			link := Permalink(opts.WebURL, export.Event.ID, entry.Submission.ID)
			row := BuildRow(entry, link)
			if len(row.Extras) > opts.CommentColumns {
				logger.Warn("row has more comments than comment columns",
					"state", state, "submission_id", entry.Submission.ID,
					"entries", len(row.Extras), "columns", opts.CommentColumns)
			}

			// Row 1 holds the header
			cell, err := excelize.CoordinatesToCellName(1, n+2)
			if err != nil {
				_ = f.Close()
				return nil, stats, fmt.Errorf("failed to address row %d: %w", n+2, err)
			}
			values := row.Values()
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				_ = f.Close()
				return nil, stats, fmt.Errorf("failed to write submission %d: %w", entry.Submission.ID, err)
			}

			st.Submissions++
			st.Comments += CountComments(entry.Ratings)
			st.Feedback += len(entry.Feedback)
		}

		logger.Info("sheet rendered", "sheet", sheet, "rows", st.Submissions)
		stats.States = append(stats.States, st)
	}
	f.SetActiveSheet(0)

	return f, stats, nil
}

// RenderBytes renders the workbook and serialises it to xlsx bytes.
func RenderBytes(logger *slog.Logger, export *models.Export, opts Options) ([]byte, Stats, error) {
	f, stats, err := Render(logger, export, opts)
	if err != nil {
		return nil, stats, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to serialise workbook: %w", err)
	}
	return buf.Bytes(), stats, nil
}

func writeHeader(f *excelize.File, sheet string, header []string, styleID int) error {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to address header for %s: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, styleID); err != nil {
		return fmt.Errorf("failed to style header for %s: %w", sheet, err)
	}
	return nil
}
