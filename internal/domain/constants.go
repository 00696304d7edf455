package domain

// SlotStepMinutes is the fixed spacing between candidate start times offered
// to clients. Appointments themselves last the service duration, which need
// not be a multiple of the step.
const SlotStepMinutes = 15

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday indices used by WeeklySchedule, 0 = Sunday .. 6 = Saturday.
const DaysPerWeek = 7
