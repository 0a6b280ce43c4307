// Package spreadsheet renders collected submissions into an Excel workbook,
// one sheet per review state.
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/papercall-export/internal/common"
	"github.com/dtnitsch/papercall-export/models"
	"github.com/xuri/excelize/v2"
)

// NotRevealed stands in for profile fields of anonymous submissions.
const NotRevealed = "Not Revealed"

var fixedColumns = []string{"Link", "Title", "Format", "Audience", "Rating", "Trust", "Name", "Email", "Bio", "Tags"}

// Header returns the header row: the fixed columns followed by
// commentColumns numbered "Comments / Feedback" columns.
func Header(commentColumns int) []string {
	header := make([]string, 0, len(fixedColumns)+commentColumns)
	header = append(header, fixedColumns...)
	for i := 1; i <= commentColumns; i++ {
		header = append(header, fmt.Sprintf("Comments / Feedback %d", i))
	}
	return header
}

// Row is one submission laid out for a sheet.
type Row struct {
	Link     string
	Title    string
	Format   string
	Audience string
	Rating   float64
	Trust    float64
	Name     string
	Email    string
	Bio      string
	Tags     string
	Extras   []string
}

// BuildRow lays out entry. link is the submission's permalink.
func BuildRow(entry models.Entry, link string) Row {
	sub := entry.Submission
	row := Row{
		Link:     link,
		Title:    sub.Talk.Title,
		Format:   sub.Talk.TalkFormat,
		Audience: sub.Talk.AudienceLevel,
		Rating:   RoundScore(sub.Rating),
		Trust:    RoundScore(sub.Trust),
		Name:     NotRevealed,
		Email:    NotRevealed,
		Bio:      NotRevealed,
		Tags:     strings.Join(sub.Tags, ", "),
		Extras:   ExtraEntries(entry),
	}
	if p := sub.Profile; p != nil {
		row.Name = p.Name
		row.Email = p.Email
		row.Bio = common.PlainText(p.Bio)
	}
	return row
}

// ExtraEntries lists the comment and feedback cells of a row in column
// order: non-empty rating comments first, then every feedback entry.
func ExtraEntries(entry models.Entry) []string {
	var extras []string
	for _, r := range entry.Ratings {
		text := strings.TrimSpace(r.Comments)
		if text == "" {
			continue
		}
		extras = append(extras, fmt.Sprintf("Comment from %s:\n%s", r.User.Email, common.PlainText(text)))
	}
	for _, fb := range entry.Feedback {
		extras = append(extras, fmt.Sprintf("Feedback from %s:\n%s", fb.User.Email, common.PlainText(fb.Body)))
	}
	return extras
}

// CountComments returns the number of ratings carrying a non-empty comment.
func CountComments(ratings []models.Rating) int {
	n := 0
	for _, r := range ratings {
		if strings.TrimSpace(r.Comments) != "" {
			n++
		}
	}
	return n
}

// FormatScore renders v with four significant digits.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// RoundScore rounds v to four significant digits.
func RoundScore(v float64) float64 {
	rounded, err := strconv.ParseFloat(FormatScore(v), 64)
	if err != nil {
		return v
	}
	return rounded
}

// Strings returns the row as displayed text.
func (r Row) Strings() []string {
	cells := []string{
		r.Link, r.Title, r.Format, r.Audience,
		FormatScore(r.Rating), FormatScore(r.Trust),
		r.Name, r.Email, r.Bio, r.Tags,
	}
	return append(cells, r.Extras...)
}

// Values returns the row as sheet cell values; scores stay numeric.
func (r Row) Values() []interface{} {
	values := []interface{}{
		cellText(r.Link), cellText(r.Title), cellText(r.Format), cellText(r.Audience),
		r.Rating, r.Trust,
		cellText(r.Name), cellText(r.Email), cellText(r.Bio), cellText(r.Tags),
	}
	for _, extra := range r.Extras {
		values = append(values, cellText(extra))
	}
	return values
}

func cellText(s string) string {
	return common.Truncate(s, excelize.TotalCellChars)
}
