package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/papercall-export/models"
	"github.com/dtnitsch/papercall-export/pkg/storage"
	"github.com/xuri/excelize/v2"
)

type stubAPI struct {
	submissions map[models.State][]models.Submission
	ratings     map[int64][]models.Rating
	feedback    map[int64][]models.Feedback
	err         error
}

func (s *stubAPI) Event(ctx context.Context) (models.Event, error) {
	return models.Event{ID: 316, Name: "DjangoCon US"}, nil
}

func (s *stubAPI) Submissions(ctx context.Context, state models.State, perPage int) ([]models.Submission, error) {
	if s.err != nil && state == models.StateWaitlist {
		return nil, s.err
	}
	return s.submissions[state], nil
}

func (s *stubAPI) Ratings(ctx context.Context, id int64) ([]models.Rating, error) {
	return s.ratings[id], nil
}

func (s *stubAPI) Feedback(ctx context.Context, id int64) ([]models.Feedback, error) {
	return s.feedback[id], nil
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		submissions: map[models.State][]models.Submission{
			models.StateAccepted: {
				{ID: 42, Talk: models.Talk{Title: "Intro to Widgets", TalkFormat: "Talk", AudienceLevel: "Beginner"}, Rating: 4.5, Trust: 3},
				{ID: 43, Talk: models.Talk{Title: "Widget Posters", TalkFormat: "Poster"}, Rating: 2, Trust: 1},
			},
			models.StateSubmitted: {
				{ID: 44, Talk: models.Talk{Title: "Widget Lab", TalkFormat: "Tutorial"}, Rating: 3.14159265, Trust: 2.5},
			},
		},
		ratings: map[int64][]models.Rating{
			42: {{Comments: "Great", User: models.User{Email: "r@example.com"}}, {Comments: ""}},
		},
		feedback: map[int64][]models.Feedback{
			44: {{Body: "More detail", User: models.User{Email: "f@example.com"}}},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(mode models.OutputMode, output string) *models.ExportConfig {
	return &models.ExportConfig{
		APIKey:         validKey,
		Mode:           mode,
		Output:         output,
		PerPage:        models.DefaultPerPage,
		CommentColumns: models.DefaultCommentColumns,
		BaseURL:        models.DefaultBaseURL,
		WebURL:         models.DefaultWebURL,
		Timeout:        models.DefaultTimeout,
	}
}

func TestRun_Excel(t *testing.T) {
	output := filepath.Join(t.TempDir(), "submissions.xlsx")

	result, err := Run(context.Background(), discardLogger(), testConfig(models.OutputModeExcel, output), newStubAPI(), &storage.Storage{})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	total := result.Workbook.Totals()
	if total.Submissions != 3 || total.Comments != 1 || total.Feedback != 1 {
		t.Errorf("totals = %+v, want 3 submissions, 1 comment, 1 feedback", total)
	}
	if result.Bytes == 0 {
		t.Error("result bytes = 0")
	}

	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	if got := len(f.GetSheetList()); got != 4 {
		t.Errorf("sheets = %d, want 4", got)
	}
	link, err := f.GetCellValue("ACCEPTED", "A2")
	if err != nil {
		t.Fatalf("GetCellValue() failed: %v", err)
	}
	if link != "https://www.papercall.io/cfp/316/submissions/42" {
		t.Errorf("link = %q", link)
	}
	rating, _ := f.GetCellValue("SUBMITTED", "E2")
	if rating != "3.142" {
		t.Errorf("rating = %q, want %q", rating, "3.142")
	}
	comment, _ := f.GetCellValue("ACCEPTED", "K2")
	if comment != "Comment from r@example.com:\nGreat" {
		t.Errorf("comment cell = %q", comment)
	}
}

func TestRun_ExcelLogsOverwrite(t *testing.T) {
	output := filepath.Join(t.TempDir(), "submissions.xlsx")
	cfg := testConfig(models.OutputModeExcel, output)

	for i, wantOverwrite := range []bool{false, true} {
		var logs strings.Builder
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		if _, err := Run(context.Background(), logger, cfg, newStubAPI(), &storage.Storage{}); err != nil {
			t.Fatalf("Run() %d failed: %v", i, err)
		}
		got := strings.Contains(logs.String(), "overwriting existing file")
		if got != wantOverwrite {
			t.Errorf("run %d: overwrite logged = %v, want %v; logs:\n%s", i, got, wantOverwrite, logs.String())
		}
		if got && !strings.Contains(logs.String(), "path="+output) {
			t.Errorf("run %d: overwrite log missing path; logs:\n%s", i, logs.String())
		}
	}
}

func TestRun_Jekyll(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site")
	cfg := testConfig(models.OutputModeJekyll, root)
	cfg.Date = "2026-10-17"

	result, err := Run(context.Background(), discardLogger(), cfg, newStubAPI(), &storage.Storage{})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	total := result.Documents.Totals()
	if total.Written != 2 || total.Skipped != 1 {
		t.Errorf("totals = %+v, want 2 written, 1 skipped", total)
	}

	data, err := os.ReadFile(filepath.Join(root, "accepted", "talks", "intro-to-widgets.md"))
	if err != nil {
		t.Fatalf("missing talk document: %v", err)
	}
	for _, want := range []string{"accepted: true", "category: talks", "difficulty: Beginner", "2026-10-17 09:00"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("document missing %q:\n%s", want, data)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "submitted", "tutorials", "widget-lab.md")); err != nil {
		t.Errorf("missing tutorial document: %v", err)
	}
	for _, state := range models.States() {
		if _, err := os.Stat(filepath.Join(root, string(state))); err != nil {
			t.Errorf("missing state directory %s", state)
		}
	}
}

func TestRun_FetchFailureWritesNothing(t *testing.T) {
	for _, mode := range []models.OutputMode{models.OutputModeExcel, models.OutputModeJekyll} {
		t.Run(string(mode), func(t *testing.T) {
			api := newStubAPI()
			api.err = errors.New("connection refused")
			output := filepath.Join(t.TempDir(), "out")

			_, err := Run(context.Background(), discardLogger(), testConfig(mode, output), api, &storage.Storage{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "waitlist") {
				t.Errorf("error = %q, want it to name the failing state", err)
			}
			if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
				t.Errorf("output %s exists after failure", output)
			}
		})
	}
}

func TestRenderSummary(t *testing.T) {
	output := filepath.Join(t.TempDir(), "submissions.xlsx")
	result, err := Run(context.Background(), discardLogger(), testConfig(models.OutputModeExcel, output), newStubAPI(), &storage.Storage{})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	summary := RenderSummary(result)
	for _, want := range []string{"accepted", "waitlist", "total", "Workbook saved to: " + output} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
