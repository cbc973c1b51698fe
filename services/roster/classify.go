package roster

import "rosterly/models"

// normalizeAvailability ensures every worker carries typed availability
// intervals. Workers with pre-parsed intervals keep them; everyone else gets
// their raw text parsed. All downstream logic reads only the typed form.
func normalizeAvailability(workers []models.Worker) []models.Worker {
	normalized := make([]models.Worker, len(workers))
	for i, w := range workers {
		if len(w.Parsed) == 0 {
			w.Parsed = ParseAvailabilityString(w.Availability)
		}
		normalized[i] = w
	}
	return normalized
}

// partitionWorkers drops suspended workers and workers whose availability
// overlaps no open slot anywhere in the week, then splits the remainder into
// the work-study and regular pools. Input order is preserved in both pools;
// the engine's determinism depends on it.
func partitionWorkers(workers []models.Worker, grid map[string][]models.Slot) (workStudy, regular []models.Worker) {
	for _, w := range workers {
		if w.Suspended {
			continue
		}
		if availableHours(w, grid) == 0 {
			continue
		}
		if w.IsWorkStudy() {
			workStudy = append(workStudy, w)
		} else {
			regular = append(regular, w)
		}
	}
	return workStudy, regular
}

// availableHours counts the open slots across the week whose time range the
// worker's availability fully covers. One slot counts as one hour.
func availableHours(w models.Worker, grid map[string][]models.Slot) int {
	total := 0
	for _, day := range models.WeekDays {
		for _, slot := range grid[day] {
			if w.Parsed.Covers(day, slot.Start, slot.End) {
				total++
			}
		}
	}
	return total
}

// longestAvailableRun returns the length of the longest run of consecutive
// open slots within a single day that the worker's availability fully covers.
func longestAvailableRun(w models.Worker, grid map[string][]models.Slot) int {
	best := 0
	for _, day := range models.WeekDays {
		run := 0
		for _, slot := range grid[day] {
			if !w.Parsed.Covers(day, slot.Start, slot.End) {
				run = 0
				continue
			}
			run++
			if run > best {
				best = run
			}
		}
	}
	return best
}
