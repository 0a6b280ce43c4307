package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/papercall-export/internal/export"
	"github.com/dtnitsch/papercall-export/models"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	loadEnv(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnv reads .env (or the given files) into the environment. A missing
// file is fine; real environment variables take precedence.
func loadEnv(logger *slog.Logger, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", "error", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "papercall-export",
		Usage: "Export PaperCall submissions to an Excel workbook or Jekyll pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "PaperCall event API key (32 characters); prompted when unset",
				EnvVars: []string{export.APIKeyEnv},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: excel or jekyll; prompted when unset",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "workbook path (excel) or root directory (jekyll); prompted when unset",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "date (YYYY-MM-DD) stamped on generated pages",
			},
			&cli.IntFlag{
				Name:  "per-page",
				Value: models.DefaultPerPage,
				Usage: "maximum submissions requested per state",
			},
			&cli.IntFlag{
				Name:  "comment-columns",
				Value: models.DefaultCommentColumns,
				Usage: "number of comment/feedback header columns in the workbook",
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   models.DefaultBaseURL,
				Usage:   "PaperCall API root",
				EnvVars: []string{"PAPERCALL_BASE_URL"},
			},
			&cli.StringFlag{
				Name:  "web-url",
				Value: models.DefaultWebURL,
				Usage: "PaperCall web root used for submission links",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: models.DefaultTimeout,
				Usage: "per-request timeout",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Action: export.ExportAction,
	}
}
