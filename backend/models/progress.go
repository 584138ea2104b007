package models

import "time"

// TimestampLayout is the ISO-8601 form used for lastVisited.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type ProgressEntry struct {
	Completed   bool   `json:"completed"`
	LastVisited string `json:"lastVisited"` // empty means never visited
}

// ProgressState maps module id to its progress entry.
type ProgressState map[string]ProgressEntry

// DefaultProgress returns a state with an empty entry for every catalog module.
func DefaultProgress() ProgressState {
	state := make(ProgressState, len(catalog))
	for _, m := range catalog {
		state[m.ID] = ProgressEntry{}
	}
	return state
}

// Clone returns a copy that shares nothing with s.
func (s ProgressState) Clone() ProgressState {
	out := make(ProgressState, len(s))
	for id, entry := range s {
		out[id] = entry
	}
	return out
}

// FormatTimestamp renders t the way lastVisited stores it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type ProgressOverview struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	Visited         int     `json:"visited"`
	PercentComplete float64 `json:"percentComplete"`
	LastVisitedID   string  `json:"lastVisitedId,omitempty"`
}
