package roster

import "rosterly/models"

// RosterService generates and manages weekly shift schedules.
type RosterService interface {
	// GenerateSchedule builds a fresh schedule from every worker on record
	// and persists it as the current one. A fatal work-study placement
	// failure returns a *WorkStudyPlacementError and persists nothing.
	GenerateSchedule(opts GenerateOptions) (*models.ScheduleDocument, error)

	// GenerateScheduleFromWorkers is GenerateSchedule over an explicit
	// worker set, bypassing the worker store.
	GenerateScheduleFromWorkers(workers []models.Worker, opts GenerateOptions) (*models.ScheduleDocument, error)

	// GenerateScheduleForWorkerIDs builds a schedule from the named subset
	// of stored workers. An unknown id fails the whole run.
	GenerateScheduleForWorkerIDs(ids []string, opts GenerateOptions) (*models.ScheduleDocument, error)

	// CurrentSchedule returns the schedule flagged as current, or nil when
	// none has been generated yet.
	CurrentSchedule() (*models.ScheduleDocument, error)

	// SetOnlyCurrent flags the given schedule as the sole current one.
	SetOnlyCurrent(id string) error

	// ListSchedules returns all stored schedules, newest first.
	ListSchedules() ([]models.ScheduleDocument, error)

	// DeleteSchedule removes a stored schedule by id.
	DeleteSchedule(id string) error
}

// GenerateOptions tunes one generation run. Zero values are replaced with
// the service defaults by normalized().
type GenerateOptions struct {
	WorkplaceID        string `json:"workplaceId"`
	MaxWorkersPerShift int    `json:"maxWorkersPerShift"`
	MaxHoursPerWorker  int    `json:"maxHoursPerWorker"`
	ShiftSizes         []int  `json:"shiftSizes"`
	WorkStudyHours     int    `json:"workStudyHours"`
}

func (o GenerateOptions) normalized() GenerateOptions {
	if o.MaxWorkersPerShift <= 0 {
		o.MaxWorkersPerShift = 2
	}
	if o.MaxHoursPerWorker <= 0 {
		o.MaxHoursPerWorker = 20
	}
	if len(o.ShiftSizes) == 0 {
		o.ShiftSizes = []int{5, 4, 3, 2}
	}
	if o.WorkStudyHours <= 0 {
		o.WorkStudyHours = 5
	}
	return o
}
