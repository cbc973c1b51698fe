package models

// WeekDays is the fixed day iteration order used everywhere a schedule is
// built or scanned. The assignment engine depends on this order being stable.
var WeekDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayHours holds a single day's open and close clock times as "HH:MM".
// Nil means the venue is closed that day.
type DayHours struct {
	Open  *string `json:"open" bson:"open"`
	Close *string `json:"close" bson:"close"`
}

// OperatingHours maps a full day name to that day's opening window.
type OperatingHours map[string]DayHours

// Settings is the venue settings document carrying the operating hours.
type Settings struct {
	ID               string         `json:"id" bson:"id"`
	HoursOfOperation OperatingHours `json:"hoursOfOperation,omitempty" bson:"hours_of_operation,omitempty"`
}

func clock(s string) *string { return &s }

// DefaultOperatingHours is the hard-coded fallback: Mon-Fri 09:00-17:00,
// weekend closed.
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{
		"Monday":    {Open: clock("09:00"), Close: clock("17:00")},
		"Tuesday":   {Open: clock("09:00"), Close: clock("17:00")},
		"Wednesday": {Open: clock("09:00"), Close: clock("17:00")},
		"Thursday":  {Open: clock("09:00"), Close: clock("17:00")},
		"Friday":    {Open: clock("09:00"), Close: clock("17:00")},
		"Saturday":  {},
		"Sunday":    {},
	}
}
