// Package document renders submissions as Markdown files with YAML front
// matter, laid out for a static site generator.
package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/papercall-export/models"
	"github.com/dtnitsch/papercall-export/pkg/slug"
	"github.com/dtnitsch/papercall-export/pkg/storage"
)

const (
	Layout = "session-details"

	// NoProfile fills presenter fields of anonymous submissions.
	NoProfile = "No Profile"

	CategoryTalks     = "talks"
	CategoryTutorials = "tutorials"
)

// Category maps a talk format to its site category. Only formats whose first
// four letters are "talk" or "espa" (talks) or "tuto" (tutorials) qualify.
func Category(talkFormat string) (string, bool) {
	prefix := []rune(strings.ToLower(strings.TrimSpace(talkFormat)))
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	switch string(prefix) {
	case "talk", "espa":
		return CategoryTalks, true
	case "tuto":
		return CategoryTutorials, true
	}
	return "", false
}

// Presenter is the single speaker entry of a session page.
type Presenter struct {
	Name     string `yaml:"name"`
	Bio      string `yaml:"bio"`
	Company  string `yaml:"company"`
	PhotoURL string `yaml:"photo_url"`
	Twitter  string `yaml:"twitter"`
	Website  string `yaml:"website"`
}

func presenterFor(p *models.Profile) Presenter {
	if p == nil {
		return Presenter{
			Name:     NoProfile,
			Bio:      NoProfile,
			Company:  NoProfile,
			PhotoURL: NoProfile,
			Twitter:  NoProfile,
			Website:  NoProfile,
		}
	}
	return Presenter{
		Name:     p.Name,
		Bio:      p.Bio,
		Company:  p.Company,
		PhotoURL: p.Avatar,
		Twitter:  p.Twitter,
		Website:  p.URL,
	}
}

// Document is one rendered file. Path is relative to the output root.
type Document struct {
	State        models.State
	Category     string
	Path         string
	SubmissionID int64
	Content      []byte
}

// Options configures a render.
type Options struct {
	States []models.State
	// Date (YYYY-MM-DD) stamps every document; empty leaves a placeholder.
	Date string
}

// Render builds the document for sub in state. ok is false when the talk
// format is not one that gets a page.
func Render(sub models.Submission, state models.State, opts Options) (doc Document, ok bool, err error) {
	category, ok := Category(sub.Talk.TalkFormat)
	if !ok {
		return Document{}, false, nil
	}

	meta, body, err := SplitFrontMatter(sub.Talk.Description)
	if err != nil {
		return Document{}, false, fmt.Errorf("submission %d: %w", sub.ID, err)
	}
	if meta == nil {
		meta = map[string]interface{}{}
	}

	titleSlug := slug.Make(sub.Talk.Title)
	tags := sub.Tags
	if tags == nil {
		tags = []string{}
	}
	date := ""
	if opts.Date != "" {
		date = opts.Date + " 09:00"
	}

	meta["abstract"] = sub.Talk.Abstract
	meta["category"] = category
	meta["title"] = sub.Talk.Title
	meta["difficulty"] = sub.Talk.AudienceLevel
	meta["permalink"] = fmt.Sprintf("/%s/%s/", category, titleSlug)
	meta["layout"] = Layout
	meta["accepted"] = state == models.StateAccepted
	meta["published"] = true
	meta["sitemap"] = true
	meta["tags"] = tags
	meta["date"] = date
	meta["room"] = ""
	meta["track"] = ""
	meta["summary"] = ""
	meta["presenters"] = []Presenter{presenterFor(sub.Profile)}
	meta["video_url"] = ""
	meta["slides_url"] = ""

	content, err := JoinFrontMatter(meta, body)
	if err != nil {
		return Document{}, false, fmt.Errorf("submission %d: %w", sub.ID, err)
	}

	return Document{
		State:        state,
		Category:     category,
		Path:         filepath.Join(string(state), category, titleSlug+".md"),
		SubmissionID: sub.ID,
		Content:      content,
	}, true, nil
}

// StateStats counts the documents of one state.
type StateStats struct {
	State   models.State
	Written int
	Skipped int
}

type Stats struct {
	States []StateStats
}

func (s Stats) Totals() StateStats {
	var total StateStats
	for _, st := range s.States {
		total.Written += st.Written
		total.Skipped += st.Skipped
	}
	return total
}

// Build renders every document of export in memory. Nothing is written, so
// a render error leaves the output tree untouched.
func Build(logger *slog.Logger, export *models.Export, opts Options) ([]Document, Stats, error) {
	var (
		docs  []Document
		stats Stats
	)

	entries := make(map[models.State][]models.Entry, len(export.Groups))
	for _, g := range export.Groups {
		entries[g.State] = g.Entries
	}

	seen := make(map[string]int64)
	for _, state := range opts.States {
		st := StateStats{State: state}
		for _, entry := range entries[state] {
			doc, ok, err := Render(entry.Submission, state, opts)
			if err != nil {
				return nil, stats, err
			}
			if !ok {
				st.Skipped++
				logger.Debug("skipping submission with unrecognized format",
					"submission_id", entry.Submission.ID, "format", entry.Submission.Talk.TalkFormat)
				continue
			}
			if prev, dup := seen[doc.Path]; dup {
				logger.Warn("duplicate document path, later submission replaces earlier",
					"path", doc.Path, "submission_id", doc.SubmissionID, "previous_submission_id", prev)
			}
			seen[doc.Path] = doc.SubmissionID

			docs = append(docs, doc)
			st.Written++
		}
		stats.States = append(stats.States, st)
	}

	return docs, stats, nil
}

// Write creates one directory per state under root, even for states without
// documents, then writes every document. Files already holding the same bytes
// are left alone; replacing a different file is logged.
func Write(logger *slog.Logger, store *storage.Storage, root string, states []models.State, docs []Document) error {
	for _, state := range states {
		if err := store.EnsureDir(filepath.Join(root, string(state))); err != nil {
			return err
		}
	}
	for _, doc := range docs {
		path := filepath.Join(root, doc.Path)
		if store.HasFile(path) {
			existing, err := store.ReadFile(path)
			if err == nil && bytes.Equal(existing, doc.Content) {
				logger.Debug("document unchanged", "path", path)
				continue
			}
			logger.Info("overwriting existing file", "path", path)
		}
		if err := store.SaveFile(path, doc.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
