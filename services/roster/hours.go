package roster

import (
	"rosterly/models"

	"go.uber.org/zap"
)

// resolveOperatingHours returns the venue's weekly hours from the settings
// store, substituting the hard-coded defaults when no record carries hours or
// the store is unreachable. This resolver never fails the caller.
func (s *DefaultRosterService) resolveOperatingHours() models.OperatingHours {
	if s.Settings == nil {
		return models.DefaultOperatingHours()
	}
	hours, err := s.Settings.GetOperatingHours()
	if err != nil {
		zap.L().Warn("operating hours unavailable, using defaults", zap.Error(err))
		return models.DefaultOperatingHours()
	}
	if len(hours) == 0 {
		return models.DefaultOperatingHours()
	}
	return hours
}

// dayWindow normalizes a day's open/close clocks into a minute-of-day window.
// Closed days and unparsable clocks yield ok=false. A close at or before the
// open clock extends the window to end-of-day; it never wraps into the next
// calendar day.
func dayWindow(dh models.DayHours) (start, end int, ok bool) {
	if dh.Open == nil || dh.Close == nil {
		return 0, 0, false
	}
	start, okOpen := parseClock(*dh.Open)
	end, okClose := parseClock(*dh.Close)
	if !okOpen || !okClose {
		return 0, 0, false
	}
	if end <= start {
		end = minutesPerDay
	}
	return start, end, true
}
