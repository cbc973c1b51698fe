package roster

import (
	"errors"
	"fmt"

	"rosterly/models"
)

// DayAvailability is one day's line in a work-study diagnostic: the open
// windows that day and how many of its slots the worker could actually take.
type DayAvailability struct {
	Day          string   `json:"day"`
	OpenWindows  []string `json:"openWindows"`
	MatchedHours int      `json:"matchedHours"`
}

// WorkStudyPlacementError reports a fatal phase-one failure: a work-study
// worker whose mandatory contiguous block could not be placed. It carries a
// per-day breakdown so the caller can show exactly where the availability
// falls short.
type WorkStudyPlacementError struct {
	Worker         string            `json:"worker"`
	RequiredHours  int               `json:"requiredHours"`
	AvailableHours int               `json:"availableHours"`
	LongestRun     int               `json:"longestRun"`
	Breakdown      []DayAvailability `json:"breakdown"`
}

func (e *WorkStudyPlacementError) Error() string {
	return fmt.Sprintf("work-study worker %s cannot receive a contiguous %dh block (longest run %dh, %dh available in total)",
		e.Worker, e.RequiredHours, e.LongestRun, e.AvailableHours)
}

// AsWorkStudyError unwraps err into a placement diagnostic, if it is one.
func AsWorkStudyError(err error) (*WorkStudyPlacementError, bool) {
	var wsErr *WorkStudyPlacementError
	if errors.As(err, &wsErr) {
		return wsErr, true
	}
	return nil, false
}

func newWorkStudyError(w models.Worker, required int, grid map[string][]models.Slot) *WorkStudyPlacementError {
	e := &WorkStudyPlacementError{
		Worker:         w.DisplayName(),
		RequiredHours:  required,
		AvailableHours: availableHours(w, grid),
		LongestRun:     longestAvailableRun(w, grid),
	}
	for _, day := range models.WeekDays {
		slots := grid[day]
		if len(slots) == 0 {
			continue
		}
		da := DayAvailability{
			Day: day,
			OpenWindows: []string{
				fmt.Sprintf("%s-%s", clockString(slots[0].Start), clockString(slots[len(slots)-1].End)),
			},
		}
		for _, slot := range slots {
			if w.Parsed.Covers(day, slot.Start, slot.End) {
				da.MatchedHours++
			}
		}
		e.Breakdown = append(e.Breakdown, da)
	}
	return e
}

func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
