// Package models defines data structures for configuration and exported submissions.
package models

import "time"

// ExportConfig holds runtime configuration for an export run.
// Values come from CLI flags, the environment, or interactive prompts.
type ExportConfig struct {
	APIKey         string
	Mode           OutputMode
	Output         string
	Date           string // YYYY-MM-DD, optional
	PerPage        int
	CommentColumns int
	BaseURL        string
	WebURL         string
	Timeout        time.Duration
}

const (
	DefaultBaseURL        = "https://www.papercall.io/api/v1"
	DefaultWebURL         = "https://www.papercall.io"
	DefaultPerPage        = 1000
	DefaultCommentColumns = 27
	DefaultTimeout        = 30 * time.Second
	APIKeyLength          = 32
)
