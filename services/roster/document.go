package roster

import (
	"time"

	"github.com/google/uuid"

	"rosterly/models"
)

// buildScheduleDocument wraps a finished grid into the persisted document
// shape. All seven days are present even when closed, and the document is
// stamped as the current schedule; the repository's upsert retires whatever
// was current before it.
func buildScheduleDocument(grid map[string][]models.Slot, opts GenerateOptions) models.ScheduleDocument {
	schedule := make(map[string][]models.Slot, len(models.WeekDays))
	for _, day := range models.WeekDays {
		slots := grid[day]
		if slots == nil {
			slots = []models.Slot{}
		}
		schedule[day] = slots
	}
	return models.ScheduleDocument{
		ID:          uuid.NewString(),
		IsCurrent:   true,
		CreatedAt:   time.Now().UTC(),
		WorkplaceID: opts.WorkplaceID,
		Schedule:    schedule,
		Options: models.ScheduleOptions{
			MaxWorkersPerShift: opts.MaxWorkersPerShift,
			MaxHoursPerWorker:  opts.MaxHoursPerWorker,
			ShiftSizes:         opts.ShiftSizes,
			WorkStudyHours:     opts.WorkStudyHours,
		},
	}
}
