package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/titaska/bitukai-client/internal/models"
)

// ErrBadSlotLabel is returned when a slot label cannot be parsed.
var ErrBadSlotLabel = errors.New("malformed slot label")

// Default business-day window, wall-clock minutes since midnight.
const (
	DefaultOpenMinutes  = 9 * 60  // 09:00
	DefaultCloseMinutes = 18 * 60 // 18:00
)

// Window is the bookable portion of a business day.
type Window struct {
	OpenMinutes  int
	CloseMinutes int
}

// DefaultWindow returns the standard 09:00-18:00 business day.
func DefaultWindow() Window {
	return Window{OpenMinutes: DefaultOpenMinutes, CloseMinutes: DefaultCloseMinutes}
}

// Length returns the window length in minutes.
func (w Window) Length() int {
	return w.CloseMinutes - w.OpenMinutes
}

// Slot is one candidate appointment window, expressed in wall-clock minutes
// since midnight. The occupied interval is half-open: [StartMinutes, EndMinutes).
type Slot struct {
	StartMinutes int
	EndMinutes   int
}

// FormatClock renders minutes-of-day as "15:04".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Label renders the slot the way the booking views display it,
// e.g. "09:00 - 09:30".
func (s Slot) Label() string {
	return FormatClock(s.StartMinutes) + " - " + FormatClock(s.EndMinutes)
}

// StartClock returns just the start, e.g. "09:00".
func (s Slot) StartClock() string {
	return FormatClock(s.StartMinutes)
}

// ParseSlotLabel parses a "09:00 - 09:30" label back into a Slot.
func ParseSlotLabel(label string) (Slot, error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return Slot{}, fmt.Errorf("%w: %q", ErrBadSlotLabel, label)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q: %v", ErrBadSlotLabel, label, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q: %v", ErrBadSlotLabel, label, err)
	}
	if end <= start {
		return Slot{}, fmt.Errorf("%w: %q: end is not after start", ErrBadSlotLabel, label)
	}
	return Slot{StartMinutes: start, EndMinutes: end}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// GenerateGrid produces the ordered candidate slots for a business day given
// the service duration. Slots are contiguous, the first opens the window, and
// no partial trailing slot is emitted. A non-positive duration or one longer
// than the window yields an empty grid.
func GenerateGrid(durationMinutes int, window Window) []Slot {
	if durationMinutes <= 0 || durationMinutes > window.Length() {
		return nil
	}

	var grid []Slot
	for start := window.OpenMinutes; start+durationMinutes <= window.CloseMinutes; start += durationMinutes {
		grid = append(grid, Slot{StartMinutes: start, EndMinutes: start + durationMinutes})
	}
	return grid
}

// Busy is one occupied interval on the viewed date, in minutes-of-day.
type Busy struct {
	StartMinutes    int
	DurationMinutes int
}

// BusyOnDate converts fetched busy intervals to minutes-of-day for the viewed
// date ("2006-01-02"). Intervals on other dates are dropped. Intervals whose
// duration the backend did not report fall back to fallbackDuration, the
// duration of the service under selection.
func BusyOnDate(date string, intervals []models.BusyInterval, fallbackDuration int) []Busy {
	var busy []Busy
	for _, interval := range intervals {
		ts, err := time.Parse("2006-01-02T15:04:05", interval.Start)
		if err != nil {
			continue
		}
		if ts.Format("2006-01-02") != date {
			continue
		}
		duration := interval.DurationMinutes
		if duration <= 0 {
			duration = fallbackDuration
		}
		busy = append(busy, Busy{
			StartMinutes:    ts.Hour()*60 + ts.Minute(),
			DurationMinutes: duration,
		})
	}
	return busy
}

// SlotTaken classifies one candidate slot against every existing reservation
// for the staff member. A slot is taken iff its half-open interval intersects
// any occupied interval: slotStart < resEnd && slotEnd > resStart. Adjacent
// back-to-back intervals never overlap. The result does not depend on the
// order of the reservations.
func SlotTaken(slot Slot, busy []Busy) bool {
	for _, b := range busy {
		resStart := b.StartMinutes
		resEnd := b.StartMinutes + b.DurationMinutes
		if slot.StartMinutes < resEnd && slot.EndMinutes > resStart {
			return true
		}
	}
	return false
}

// SlotStatus pairs a slot with its occupancy classification.
type SlotStatus struct {
	Slot  Slot
	Taken bool
}

// Classify marks each slot of the grid as taken or free.
func Classify(grid []Slot, busy []Busy) []SlotStatus {
	statuses := make([]SlotStatus, 0, len(grid))
	for _, slot := range grid {
		statuses = append(statuses, SlotStatus{Slot: slot, Taken: SlotTaken(slot, busy)})
	}
	return statuses
}
