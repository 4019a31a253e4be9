package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/titaska/bitukai-client/internal/models"
)

// Errors returned by the availability engine.
var (
	ErrNotBookable = errors.New("product is not a bookable service")
	ErrNoDate      = errors.New("date must be provided")
)

// TakenSlotsFetcher is the slice of the backend API the engine needs: the
// occupied intervals for one staff member on one date.
type TakenSlotsFetcher interface {
	TakenSlots(ctx context.Context, employeeID, date string) ([]models.BusyInterval, error)
}

// StaffSlots is the availability of one staff member for the viewed date:
// the full slot grid with per-slot occupancy.
type StaffSlots struct {
	StaffID   string
	StaffName string
	Slots     []SlotStatus
}

// Engine computes per-staff bookable slots for a service and date. It is
// stateless apart from its collaborators; every call owns its own fetches.
type Engine struct {
	fetcher TakenSlotsFetcher
	window  Window
	logger  zerolog.Logger
}

// NewEngine creates an Engine over the default business-day window.
func NewEngine(fetcher TakenSlotsFetcher) *Engine {
	return NewEngineWithWindow(fetcher, DefaultWindow())
}

// NewEngineWithWindow creates an Engine over a custom window.
func NewEngineWithWindow(fetcher TakenSlotsFetcher, window Window) *Engine {
	return &Engine{
		fetcher: fetcher,
		window:  window,
		logger:  log.With().Str("component", "availability_engine").Logger(),
	}
}

// DaySchedule produces the slot grid for the service on the given date,
// classified per staff member against their existing reservations. The
// per-staff fetches run concurrently; each result is paired with the staff
// member that produced it by index, so completion order does not matter.
// The first fetch failure fails the whole schedule.
func (e *Engine) DaySchedule(ctx context.Context, staff []models.Staff, service models.Product, date string) ([]StaffSlots, error) {
	if !service.IsBookable() {
		return nil, fmt.Errorf("%w: %s", ErrNotBookable, service.ProductID)
	}
	if date == "" {
		return nil, ErrNoDate
	}

	duration := *service.DurationMinutes
	grid := GenerateGrid(duration, e.window)

	results := make([][]models.BusyInterval, len(staff))
	errs := make([]error, len(staff))

	var wg sync.WaitGroup
	for i := range staff {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.fetcher.TakenSlots(ctx, staff[i].StaffID, date)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("availability fetch for staff %s failed: %w", staff[i].StaffID, err)
		}
	}

	schedule := make([]StaffSlots, 0, len(staff))
	for i, member := range staff {
		busy := BusyOnDate(date, results[i], duration)
		schedule = append(schedule, StaffSlots{
			StaffID:   member.StaffID,
			StaffName: member.FullName(),
			Slots:     Classify(grid, busy),
		})
	}

	e.logger.Debug().
		Str("service_id", service.ProductID).
		Str("date", date).
		Int("staff_count", len(staff)).
		Int("slots_per_staff", len(grid)).
		Msg("Day schedule computed")

	return schedule, nil
}
