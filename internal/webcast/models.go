package webcast

import "time"

// Status is an entry's lifecycle state. It is always recomputable from the
// event's time window; the stored value is only a projection of that window,
// except for NO_STREAM, which marks an entry whose resolution came up empty.
type Status string

const (
	StatusUpcoming Status = "UPCOMING"
	StatusLive     Status = "LIVE"
	StatusEnded    Status = "ENDED"
	StatusNoStream Status = "NO_STREAM"
)

// ParseStatus maps a serialized status back to a Status. Anything
// unrecognized is treated as UPCOMING, matching how unlabeled legacy
// entries were interpreted.
func ParseStatus(s string) Status {
	if isStatus(s) {
		return Status(s)
	}
	return StatusUpcoming
}

func isStatus(s string) bool {
	switch Status(s) {
	case StatusLive, StatusEnded, StatusUpcoming, StatusNoStream:
		return true
	}
	return false
}

// Rank orders statuses for output: live first, then upcoming (and
// unresolved), ended last.
func (s Status) Rank() int {
	switch s {
	case StatusLive:
		return 0
	case StatusEnded:
		return 2
	default:
		return 1
	}
}

// DefaultEventDuration is assumed when the catalog omits an end time.
const DefaultEventDuration = 4 * time.Hour

// Event is one scheduled or in-progress broadcast admitted from the catalog.
type Event struct {
	Name        string // display name, including time annotation and tag suffix
	Category    Category
	RawCategory string
	Iframe      string
	Poster      string
	StartsAt    int64 // unix seconds
	EndsAt      int64 // unix seconds
	Status      Status
}

// Key is the structural identity used to look up per-run resolution results:
// the annotated name, the refined category, and the iframe reference.
func (e Event) Key() string {
	return e.Name + "::" + string(e.Category) + "::" + e.Iframe
}

// StatusAt derives the lifecycle status of the event's time window at now.
func (e Event) StatusAt(now time.Time) Status {
	ts := now.Unix()
	switch {
	case ts >= e.EndsAt:
		return StatusEnded
	case ts >= e.StartsAt:
		return StatusLive
	default:
		return StatusUpcoming
	}
}
