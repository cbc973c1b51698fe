package roster

import "rosterly/models"

// assignmentRun holds the mutable state of one generation run: the slot grid
// and each worker's running total of assigned hours.
type assignmentRun struct {
	grid  map[string][]models.Slot
	hours map[string]int
	opts  GenerateOptions
}

func newAssignmentRun(grid map[string][]models.Slot, opts GenerateOptions) *assignmentRun {
	return &assignmentRun{
		grid:  grid,
		hours: make(map[string]int),
		opts:  opts,
	}
}

// canPlaceBlock reports whether length consecutive slots starting at startIdx
// all exist, have spare capacity, and lie fully inside the worker's
// availability.
func (r *assignmentRun) canPlaceBlock(day string, startIdx, length int, w models.Worker) bool {
	slots := r.grid[day]
	if startIdx+length > len(slots) {
		return false
	}
	for i := 0; i < length; i++ {
		slot := slots[startIdx+i]
		if len(slot.Assigned) >= r.opts.MaxWorkersPerShift {
			return false
		}
		if !w.Parsed.Covers(day, slot.Start, slot.End) {
			return false
		}
	}
	return true
}

// placeBlock appends an assignment snapshot to each slot of the block and
// adds the block length to the worker's running total.
func (r *assignmentRun) placeBlock(day string, startIdx, length int, w models.Worker) {
	slots := r.grid[day]
	snapshot := models.Assignment{
		Email:     w.Key(),
		Name:      w.DisplayName(),
		WorkStudy: w.IsWorkStudy(),
	}
	for i := 0; i < length; i++ {
		slots[startIdx+i].Assigned = append(slots[startIdx+i].Assigned, snapshot)
	}
	r.hours[w.Key()] += length
}

// tryAssign walks the week Monday through Sunday and, within each day, slot
// indices left to right, placing blocks first-fit with the largest preferred
// size tried first. After a placement the scan jumps past the filled block.
// The walk never backtracks. neededHours acts as a ceiling, not a quota:
// fractional remainders under one hour are simply never placed. Returns
// whether the full need was met.
func (r *assignmentRun) tryAssign(w models.Worker, neededHours float64) bool {
	remaining := neededHours
	key := w.Key()
	for _, day := range models.WeekDays {
		slots := r.grid[day]
		for idx := 0; idx < len(slots) && remaining > 0; idx++ {
			hoursLeft := r.opts.MaxHoursPerWorker - r.hours[key]
			if hoursLeft <= 0 {
				return remaining <= 0
			}
			for _, size := range r.opts.ShiftSizes {
				take := size
				if float64(take) > remaining {
					take = int(remaining)
				}
				if take > hoursLeft {
					take = hoursLeft
				}
				if take < 1 {
					continue
				}
				if r.canPlaceBlock(day, idx, take, w) {
					r.placeBlock(day, idx, take, w)
					remaining -= float64(take)
					// Skip over the newly placed block and move forward.
					idx += take - 1
					break
				}
			}
		}
	}
	return remaining <= 0
}

// assignWorkStudy runs phase one: every work-study worker receives exactly
// the mandatory number of hours. A worker whose longest contiguous available
// run is under the minimum, or who cannot be placed because of capacity
// contention, aborts the whole run; no partial schedule is produced.
func (r *assignmentRun) assignWorkStudy(workers []models.Worker) error {
	minHours := r.opts.WorkStudyHours
	for _, w := range workers {
		if longestAvailableRun(w, r.grid) < minHours {
			return newWorkStudyError(w, minHours, r.grid)
		}
		if !r.tryAssign(w, float64(minHours)) {
			return newWorkStudyError(w, minHours, r.grid)
		}
	}
	return nil
}

// fairFill runs phase two: the week's slot capacity left over after
// work-study placements is divided evenly across the regular pool and each
// worker is filled toward that target. Under-fill is accepted silently.
// Returns the per-worker target for logging.
func (r *assignmentRun) fairFill(regular []models.Worker, workStudyCount int) float64 {
	if len(regular) == 0 {
		return 0
	}
	totalSlots := 0
	for _, day := range models.WeekDays {
		totalSlots += len(r.grid[day])
	}
	remainingTarget := totalSlots*r.opts.MaxWorkersPerShift - workStudyCount*r.opts.WorkStudyHours
	if remainingTarget < 0 {
		remainingTarget = 0
	}
	target := float64(remainingTarget) / float64(len(regular))
	for _, w := range regular {
		r.tryAssign(w, target)
	}
	return target
}
