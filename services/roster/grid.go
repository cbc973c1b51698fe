package roster

import "rosterly/models"

// buildSlotGrid discretizes each open day into consecutive 1-hour slots.
// The final slot of a window is shorter when the window length is not a
// multiple of 60. Closed days get an empty slot list, never an error.
func buildSlotGrid(hours models.OperatingHours) map[string][]models.Slot {
	grid := make(map[string][]models.Slot, len(models.WeekDays))
	for _, day := range models.WeekDays {
		start, end, ok := dayWindow(hours[day])
		if !ok {
			grid[day] = []models.Slot{}
			continue
		}
		slots := []models.Slot{}
		for t := start; t < end; t += 60 {
			slotEnd := t + 60
			if slotEnd > end {
				slotEnd = end
			}
			slots = append(slots, models.Slot{Start: t, End: slotEnd, Assigned: []models.Assignment{}})
		}
		grid[day] = slots
	}
	return grid
}
