package models

import (
	"strings"
	"time"
)

// Interval is a minute-of-day range within a single day. End may be 1440 to
// represent "through midnight".
type Interval struct {
	Start int `json:"start" bson:"start"`
	End   int `json:"end" bson:"end"`
}

// AvailabilityIntervals maps a full day name to the ranges a worker listed for
// that day. Ranges are kept exactly as parsed: unsorted, unmerged, possibly
// overlapping.
type AvailabilityIntervals map[string][]Interval

// Covers reports whether some single interval for the day fully contains
// [start, end). Overlapping ranges never combine to satisfy a slot.
func (a AvailabilityIntervals) Covers(day string, start, end int) bool {
	for _, iv := range a[day] {
		if iv.Start <= start && iv.End >= end {
			return true
		}
	}
	return false
}

// Worker represents a member of the workplace pool. Worker records are edited
// through the worker CRUD endpoints and only read by the scheduling engine.
type Worker struct {
	ID           string                `json:"id" bson:"id"`
	FirstName    string                `json:"firstName" bson:"first_name"`
	LastName     string                `json:"lastName" bson:"last_name"`
	Email        string                `json:"email" bson:"email"`
	WorkerType   string                `json:"workerType,omitempty" bson:"worker_type,omitempty"`
	WorkStudy    bool                  `json:"workStudy" bson:"work_study"`
	Suspended    bool                  `json:"suspended" bson:"suspended"`
	Availability string                `json:"availability" bson:"availability"`
	Parsed       AvailabilityIntervals `json:"availabilityParsed,omitempty" bson:"availability_parsed,omitempty"`
	CreatedAt    time.Time             `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time             `json:"updatedAt" bson:"updated_at"`
}

// Key returns the identity used in schedule assignments: the email when
// present, the document id otherwise.
func (w Worker) Key() string {
	if w.Email != "" {
		return w.Email
	}
	return w.ID
}

// DisplayName returns the worker's full name, falling back to the key.
func (w Worker) DisplayName() string {
	name := strings.TrimSpace(w.FirstName + " " + w.LastName)
	if name == "" {
		return w.Key()
	}
	return name
}

// IsWorkStudy reports whether the worker is in the mandatory-hours class.
// Any recognized marker counts: the boolean flag, or a worker-type text of
// "yes" or "work study" (case-insensitive).
func (w Worker) IsWorkStudy() bool {
	if w.WorkStudy {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(w.WorkerType)) {
	case "yes", "work study":
		return true
	}
	return false
}
