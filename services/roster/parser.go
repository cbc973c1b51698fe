package roster

import (
	"strconv"
	"strings"

	"rosterly/models"
)

const minutesPerDay = 24 * 60

// dayNames maps accepted day tokens (3-letter abbreviations and full names,
// lowercased) to the full day name used as the availability key.
var dayNames = map[string]string{
	"sun": "Sunday", "sunday": "Sunday",
	"mon": "Monday", "monday": "Monday",
	"tue": "Tuesday", "tuesday": "Tuesday",
	"wed": "Wednesday", "wednesday": "Wednesday",
	"thu": "Thursday", "thursday": "Thursday",
	"fri": "Friday", "friday": "Friday",
	"sat": "Saturday", "saturday": "Saturday",
}

// ParseAvailabilityString converts a free-text weekly availability string into
// per-day minute intervals. Blocks are separated by commas or semicolons and
// look like "Mon 09:00-13:00". Malformed blocks and unknown day tokens are
// skipped silently: garbled input must never abort the scheduling pipeline.
// A block whose end does not lie after its start is read as running through
// midnight, so "Fri 22:00-02:00" becomes 22:00-24:00.
func ParseAvailabilityString(text string) models.AvailabilityIntervals {
	availability := models.AvailabilityIntervals{}
	blocks := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ';' })
	for _, block := range blocks {
		fields := strings.Fields(block)
		if len(fields) < 2 {
			continue
		}
		day, ok := dayNames[strings.ToLower(fields[0])]
		if !ok {
			continue
		}
		// Tolerate spaces around the dash ("Mon 09:00 - 13:00").
		span := strings.Join(fields[1:], "")
		startRaw, endRaw, ok := strings.Cut(span, "-")
		if !ok {
			continue
		}
		start, ok := parseClock(startRaw)
		if !ok {
			continue
		}
		end, ok := parseClock(endRaw)
		if !ok {
			continue
		}
		if end <= start {
			end = minutesPerDay
		}
		availability[day] = append(availability[day], models.Interval{Start: start, End: end})
	}
	return availability
}

// parseClock parses an "HH:MM" clock time into minutes since midnight.
// Minutes are mandatory; "10am" and bare "10" are rejected.
func parseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
