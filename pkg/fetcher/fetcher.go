package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/papercall-export/models"
)

// Fetcher is an authenticated client for the PaperCall event API.
type Fetcher struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewFetcher returns a Fetcher for the API rooted at baseURL, authenticating with token.
func NewFetcher(baseURL, token string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// Event returns the event the API key belongs to.
func (f *Fetcher) Event(ctx context.Context) (models.Event, error) {
	var event models.Event
	if err := f.getJSON(ctx, "/event", nil, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Submissions returns every submission in state, asking for up to perPage
// records in a single call.
func (f *Fetcher) Submissions(ctx context.Context, state models.State, perPage int) ([]models.Submission, error) {
	params := url.Values{}
	params.Set("state", string(state))
	params.Set("per_page", fmt.Sprintf("%d", perPage))

	var submissions []models.Submission
	if err := f.getJSON(ctx, "/submissions", params, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (f *Fetcher) Ratings(ctx context.Context, submissionID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	path := fmt.Sprintf("/submissions/%d/ratings", submissionID)
	if err := f.getJSON(ctx, path, nil, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (f *Fetcher) Feedback(ctx context.Context, submissionID int64) ([]models.Feedback, error) {
	var feedback []models.Feedback
	path := fmt.Sprintf("/submissions/%d/feedback", submissionID)
	if err := f.getJSON(ctx, path, nil, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (f *Fetcher) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	body, err := f.GetBytes(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// GetBytes issues an authenticated GET against path and returns the body.
// Errors name the path but never the full URL, which carries the token.
func (f *Fetcher) GetBytes(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("_token", f.token)
	reqURL := f.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, redact(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request to %s: %w", path, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response body: %w", path, err)
	}
	return bodyBytes, nil
}

// StatusError reports a non-200 response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("failed to fetch %s, status code: %d", e.Path, e.StatusCode)
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		msg += " (check the API key)"
	}
	return msg
}

// redact drops the *url.Error wrapper so the request URL stays out of messages.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
