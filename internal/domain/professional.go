package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/pkg/types"
)

// DayWindow is one day of a weekly schedule: either closed, or an open
// wall-clock window with Start < End. Overnight windows are not supported.
// The zero value is a closed day, so a day can never be "open" with an
// invalid window by accident.
type DayWindow struct {
	Open  bool             `json:"open"`
	Start types.TimeString `json:"start,omitempty"`
	End   types.TimeString `json:"end,omitempty"`
}

// Closed returns the closed-day value.
func Closed() DayWindow {
	return DayWindow{}
}

// Window returns an open day from start to end.
func Window(start, end types.TimeString) DayWindow {
	return DayWindow{Open: true, Start: start, End: end}
}

// Validate checks the window invariant: valid times and Start < End when open.
func (w DayWindow) Validate() error {
	if !w.Open {
		return nil
	}
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("window start %s must be before end %s", w.Start, w.End)
	}
	return nil
}

// WeeklySchedule maps weekday index (0 = Sunday .. 6 = Saturday) to that
// day's working window.
type WeeklySchedule [DaysPerWeek]DayWindow

// WindowFor returns the window for the given weekday.
func (s WeeklySchedule) WindowFor(day time.Weekday) DayWindow {
	return s[int(day)]
}

// Validate checks every open day's window.
func (s WeeklySchedule) Validate() error {
	for day, w := range s {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("weekday %d: %w", day, err)
		}
	}
	return nil
}

// Professional is a studio member who performs a subset of the catalog inside
// a fixed weekly working-hours template.
type Professional struct {
	ID                uuid.UUID
	Name              string
	Role              string
	OfferedServiceIDs []uuid.UUID
	WeeklySchedule    WeeklySchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Offers reports whether the professional performs the given service.
func (p *Professional) Offers(serviceID uuid.UUID) bool {
	for _, id := range p.OfferedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
