package models

// State is the review bucket a submission currently occupies.
type State string

const (
	StateSubmitted State = "submitted"
	StateAccepted  State = "accepted"
	StateRejected  State = "rejected"
	StateWaitlist  State = "waitlist"
)

// States returns every review state in export order.
func States() []State {
	return []State{StateSubmitted, StateAccepted, StateRejected, StateWaitlist}
}

// Submission is a single proposal record as returned by the API.
type Submission struct {
	ID      int64    `json:"id"`
	State   State    `json:"state"`
	Talk    Talk     `json:"talk"`
	Rating  float64  `json:"rating"`
	Trust   float64  `json:"trust"`
	Profile *Profile `json:"profile"` // nil when the submitter is anonymous
	Tags    []string `json:"tags"`
}

type Talk struct {
	Title         string `json:"title"`
	Abstract      string `json:"abstract"`
	Description   string `json:"description"`
	Notes         string `json:"notes"`
	TalkFormat    string `json:"talk_format"`
	AudienceLevel string `json:"audience_level"`
}

type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Company  string `json:"company"`
	Twitter  string `json:"twitter"`
	URL      string `json:"url"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

// User identifies the reviewer behind a rating or feedback entry.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Rating is one reviewer's score, optionally with a comment.
type Rating struct {
	Value    float64 `json:"value"`
	Comments string  `json:"comments"`
	User     User    `json:"user"`
}

// Feedback is a message left for the submitter.
type Feedback struct {
	Body string `json:"body"`
	User User   `json:"user"`
}

// Event is the CFP the API key belongs to.
type Event struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
