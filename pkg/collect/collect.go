// Package collect gathers everything an export needs before rendering starts.
package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/papercall-export/models"
)

// API is the subset of the PaperCall client used during collection.
type API interface {
	Event(ctx context.Context) (models.Event, error)
	Submissions(ctx context.Context, state models.State, perPage int) ([]models.Submission, error)
	Ratings(ctx context.Context, submissionID int64) ([]models.Rating, error)
	Feedback(ctx context.Context, submissionID int64) ([]models.Feedback, error)
}

// Options controls which side data is fetched.
type Options struct {
	PerPage int
	// Reviews fetches the event plus ratings and feedback for every submission.
	Reviews bool
}

// Collect fetches submissions for each state in order, then the reviews for
// each submission when requested. Any failed call aborts the collection.
func Collect(ctx context.Context, logger *slog.Logger, api API, states []models.State, opts Options) (*models.Export, error) {
	export := &models.Export{}

	if opts.Reviews {
		event, err := api.Event(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch event: %w", err)
		}
		export.Event = event
		logger.Info("event resolved", "event_id", event.ID, "name", event.Name)
	}

	for _, state := range states {
		submissions, err := api.Submissions(ctx, state, opts.PerPage)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s submissions: %w", state, err)
		}
		if opts.PerPage > 0 && len(submissions) >= opts.PerPage {
			logger.Warn("state reached the page size ceiling, results may be truncated",
				"state", state, "per_page", opts.PerPage)
		}
		logger.Info("submissions fetched", "state", state, "count", len(submissions))

		var reviews map[int64]models.Entry
		if opts.Reviews {
			reviews, err = fetchReviews(ctx, api, submissions)
			if err != nil {
				return nil, err
			}
		}

		group := models.StateGroup{State: state, Entries: make([]models.Entry, 0, len(submissions))}
		for _, sub := range submissions {
			entry := models.Entry{Submission: sub}
			if r, ok := reviews[sub.ID]; ok {
				entry.Ratings = r.Ratings
				entry.Feedback = r.Feedback
			}
			group.Entries = append(group.Entries, entry)
		}
		export.Groups = append(export.Groups, group)
	}

	return export, nil
}

// fetchReviews returns ratings and feedback keyed by submission id.
func fetchReviews(ctx context.Context, api API, submissions []models.Submission) (map[int64]models.Entry, error) {
	reviews := make(map[int64]models.Entry, len(submissions))
	for _, sub := range submissions {
		ratings, err := api.Ratings(ctx, sub.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ratings for submission %d: %w", sub.ID, err)
		}
		feedback, err := api.Feedback(ctx, sub.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch feedback for submission %d: %w", sub.ID, err)
		}
		reviews[sub.ID] = models.Entry{Ratings: ratings, Feedback: feedback}
	}
	return reviews, nil
}
