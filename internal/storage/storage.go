package storage

import "time"

// Event statuses.
const (
	StatusProcessed = "processed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusFiltered  = "filtered"
)

// Event is one line of the processing log: the outcome of handling a video.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	VideoID    string    `json:"video_id"`
	Index      int       `json:"index"`
	Title      string    `json:"title,omitempty"`
	Status     string    `json:"status"`
	ReportPath string    `json:"report_path,omitempty"`
	Tokens     int       `json:"tokens,omitempty"`
	Cost       float64   `json:"cost,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Recorder abstracts persistence of processing events.
// LoadEvents returns events in the order they were appended.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendEvent(event Event) error
	LoadEvents() ([]Event, error)
}
