// Package export implements the export command: resolve configuration,
// collect submissions, render them and report what was written.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/papercall-export/models"
	"github.com/dtnitsch/papercall-export/pkg/collect"
	"github.com/dtnitsch/papercall-export/pkg/document"
	"github.com/dtnitsch/papercall-export/pkg/fetcher"
	"github.com/dtnitsch/papercall-export/pkg/prompt"
	"github.com/dtnitsch/papercall-export/pkg/spreadsheet"
	"github.com/dtnitsch/papercall-export/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Result describes what a run wrote.
type Result struct {
	Mode      models.OutputMode
	Output    string
	Bytes     int64
	Workbook  spreadsheet.Stats
	Documents document.Stats
}

func ExportAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Prompts go to stderr so stdout only carries the summary
	p := prompt.New(os.Stdin, os.Stderr)
	cfg, err := ResolveConfig(FlagsFromContext(c), p)
	if err != nil {
		if errors.Is(err, prompt.ErrNoInput) {
			err = fmt.Errorf("%w: pass --api-key, --format and --output or set %s", err, APIKeyEnv)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	logger.Info("export configured", "mode", cfg.Mode, "output", cfg.Output, "per_page", cfg.PerPage)

	api := fetcher.NewFetcher(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	result, err := Run(c.Context, logger, cfg, api, &storage.Storage{})
	if err != nil {
		logger.Error("export failed", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	fmt.Fprint(c.App.Writer, RenderSummary(result))
	return nil
}

// Run collects every state's submissions from api and writes them in the
// configured mode. All data is fetched and rendered before the first write.
func Run(ctx context.Context, logger *slog.Logger, cfg *models.ExportConfig, api collect.API, store *storage.Storage) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	states := models.States()

	data, err := collect.Collect(ctx, logger, api, states, collect.Options{
		PerPage: cfg.PerPage,
		Reviews: cfg.Mode == models.OutputModeExcel,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Mode: cfg.Mode, Output: cfg.Output}
	switch cfg.Mode {
	case models.OutputModeExcel:
		content, stats, err := spreadsheet.RenderBytes(logger, data, spreadsheet.Options{
			States:         states,
			CommentColumns: cfg.CommentColumns,
			WebURL:         cfg.WebURL,
			HeaderStyle:    spreadsheet.DefaultHeaderStyle(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render workbook: %w", err)
		}
		if store.HasFile(cfg.Output) {
			logger.Info("overwriting existing file", "path", cfg.Output)
		}
		if err := store.SaveFileAtomic(cfg.Output, content); err != nil {
			return nil, fmt.Errorf("failed to save workbook: %w", err)
		}
		logger.Info("workbook saved", "path", cfg.Output, "bytes", len(content))
		result.Workbook = stats
		result.Bytes = int64(len(content))

	case models.OutputModeJekyll:
		docs, stats, err := document.Build(logger, data, document.Options{States: states, Date: cfg.Date})
		if err != nil {
			return nil, fmt.Errorf("failed to render documents: %w", err)
		}
		if err := document.Write(logger, store, cfg.Output, states, docs); err != nil {
			return nil, fmt.Errorf("failed to save documents: %w", err)
		}
		logger.Info("documents saved", "path", cfg.Output, "count", len(docs))
		result.Documents = stats

	default:
		return nil, fmt.Errorf("unsupported output mode %q", cfg.Mode)
	}

	return result, nil
}
