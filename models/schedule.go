package models

import "time"

// Assignment is a denormalized snapshot of a worker written into a slot at
// placement time. Later worker edits do not retroactively alter a schedule.
type Assignment struct {
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	WorkStudy bool   `json:"ws" bson:"ws"`
}

// Slot is one schedulable unit of time within a single open day. Slots are at
// most one hour; the final slot of a window may be shorter when the window
// length is not a multiple of 60.
type Slot struct {
	Start    int          `json:"start" bson:"start"`
	End      int          `json:"end" bson:"end"`
	Assigned []Assignment `json:"assigned" bson:"assigned"`
}

// ScheduleOptions records the configuration a schedule was generated with.
type ScheduleOptions struct {
	MaxWorkersPerShift int   `json:"maxWorkersPerShift" bson:"max_workers_per_shift"`
	MaxHoursPerWorker  int   `json:"maxHoursPerWorker" bson:"max_hours_per_worker"`
	ShiftSizes         []int `json:"shiftSizes" bson:"shift_sizes"`
	WorkStudyHours     int   `json:"workStudyHours" bson:"work_study_hours"`
}

// ScheduleDocument is the persisted weekly schedule. At most one document in
// the store carries IsCurrent=true at any time; the repository's upsert
// enforces that.
type ScheduleDocument struct {
	ID          string            `json:"id" bson:"id"`
	IsCurrent   bool              `json:"isCurrent" bson:"isCurrent"`
	CreatedAt   time.Time         `json:"createdAt" bson:"created_at"`
	WorkplaceID string            `json:"workplace" bson:"workplace"`
	Schedule    map[string][]Slot `json:"schedule" bson:"schedule"`
	Options     ScheduleOptions   `json:"options" bson:"options"`
}
