package model

// Task is the view shape of a habit row for the dashboard.
//
// ID is a string because the UI treats ids as opaque; Title carries the
// habit name.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// GroupMember is the per-request aggregation of a member's profile and
// their tasks, built for display and never persisted.
//
// Name is the resolved display name ("You" for the caller). Avatar is a
// constant placeholder for every member. LastCheckin is not tracked and
// is always empty.
type GroupMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Tasks       []Task `json:"tasks"`
	LastCheckin string `json:"lastCheckin"`
}
