package models

// Entry is a submission together with the reviews fetched for it.
type Entry struct {
	Submission Submission
	Ratings    []Rating
	Feedback   []Feedback
}

// StateGroup holds the entries of one review state in API order.
type StateGroup struct {
	State   State
	Entries []Entry
}

// Export is everything collected for one run, ready to render.
type Export struct {
	Event  Event
	Groups []StateGroup
}
