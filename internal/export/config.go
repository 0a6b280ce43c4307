package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/papercall-export/internal/common"
	"github.com/dtnitsch/papercall-export/models"
	"github.com/dtnitsch/papercall-export/pkg/prompt"
	"github.com/urfave/cli/v2"
)

// APIKeyEnv names the environment variable holding the API key.
const APIKeyEnv = "PAPERCALL_API_KEY"

var (
	ErrInvalidAPIKey = fmt.Errorf("API key must be %d characters long", models.APIKeyLength)
	ErrInvalidFormat = errors.New(`output format must be "1" (excel) or "2" (jekyll)`)
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
)

// Flags carries the raw command line values before resolution.
type Flags struct {
	APIKey         string
	Format         string
	Output         string
	Date           string
	PerPage        int
	CommentColumns int
	BaseURL        string
	WebURL         string
	Timeout        time.Duration
}

// FlagsFromContext reads the export flags from c.
func FlagsFromContext(c *cli.Context) Flags {
	return Flags{
		APIKey:         c.String("api-key"),
		Format:         c.String("format"),
		Output:         c.String("output"),
		Date:           c.String("date"),
		PerPage:        c.Int("per-page"),
		CommentColumns: c.Int("comment-columns"),
		BaseURL:        c.String("base-url"),
		WebURL:         c.String("web-url"),
		Timeout:        c.Duration("timeout"),
	}
}

// ResolveConfig validates flags and asks for whatever is missing: the API
// key, then the output format, then the output location. The first invalid
// value aborts resolution; nothing is retried.
func ResolveConfig(flags Flags, p *prompt.Prompter) (*models.ExportConfig, error) {
	cfg := &models.ExportConfig{
		PerPage:        flags.PerPage,
		CommentColumns: flags.CommentColumns,
		Timeout:        flags.Timeout,
	}

	if err := validateSettings(flags, cfg); err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(flags.APIKey)
	if apiKey == "" {
		p.Say("Your PaperCall API key is listed on your event's API docs page (https://www.papercall.io/events/<event id>/apidocs).")
		p.Say("Set %s to skip this prompt.", APIKeyEnv)
		answer, err := p.Secret("Please enter your PaperCall event API key")
		if err != nil {
			return nil, err
		}
		apiKey = answer
	}
	if utf8.RuneCountInString(apiKey) != models.APIKeyLength {
		return nil, ErrInvalidAPIKey
	}
	cfg.APIKey = apiKey

	format := flags.Format
	if format == "" {
		p.Say("Which format would you like to output?")
		p.Say("1: Excel")
		p.Say("2: YAML/Markdown for Jekyll")
		answer, err := p.Ask("Please enter your output format (1 or 2)", "")
		if err != nil {
			return nil, err
		}
		format = answer
	}
	mode, ok := models.ParseOutputMode(format)
	if !ok {
		return nil, ErrInvalidFormat
	}
	cfg.Mode = mode

	output := strings.TrimSpace(flags.Output)
	if output == "" {
		label := "Filename to write"
		if mode == models.OutputModeJekyll {
			label = "Directory to write to"
		}
		answer, err := p.Ask(label, mode.DefaultOutput())
		if err != nil {
			return nil, err
		}
		output = answer
	}
	cfg.Output = output

	return cfg, nil
}

// validateSettings checks the values that never come from a prompt.
func validateSettings(flags Flags, cfg *models.ExportConfig) error {
	if flags.Date != "" {
		if _, err := time.Parse("2006-01-02", flags.Date); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, flags.Date)
		}
		cfg.Date = flags.Date
	}
	if cfg.PerPage <= 0 {
		return fmt.Errorf("per-page must be positive, got %d", cfg.PerPage)
	}
	if cfg.CommentColumns < 0 {
		return fmt.Errorf("comment-columns must not be negative, got %d", cfg.CommentColumns)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = models.DefaultTimeout
	}

	baseURL, err := common.ValidateBaseURL(orDefault(flags.BaseURL, models.DefaultBaseURL))
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	cfg.BaseURL = baseURL

	webURL, err := common.ValidateBaseURL(orDefault(flags.WebURL, models.DefaultWebURL))
	if err != nil {
		return fmt.Errorf("invalid web URL: %w", err)
	}
	cfg.WebURL = webURL

	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
