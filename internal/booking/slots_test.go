package booking

import (
	"errors"
	"testing"

	"github.com/titaska/bitukai-client/internal/models"
)

func TestGenerateGridCount(t *testing.T) {
	cases := []struct {
		name     string
		duration int
		want     int
	}{
		{"30 minute service", 30, 18},
		{"45 minute service", 45, 12},
		{"60 minute service", 60, 9},
		{"uneven 50 minute service", 50, 10},
		{"full day service", 540, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := GenerateGrid(tc.duration, DefaultWindow())
			if len(grid) != tc.want {
				t.Fatalf("GenerateGrid(%d) produced %d slots, want %d", tc.duration, len(grid), tc.want)
			}
		})
	}
}

func TestGenerateGridShape(t *testing.T) {
	grid := GenerateGrid(45, DefaultWindow())
	if len(grid) == 0 {
		t.Fatal("expected a non-empty grid")
	}
	if grid[0].StartMinutes != DefaultOpenMinutes {
		t.Fatalf("first slot starts at %d, want %d", grid[0].StartMinutes, DefaultOpenMinutes)
	}
	for i := 1; i < len(grid); i++ {
		if grid[i].StartMinutes != grid[i-1].EndMinutes {
			t.Fatalf("slot %d starts at %d, previous ends at %d", i, grid[i].StartMinutes, grid[i-1].EndMinutes)
		}
	}
	last := grid[len(grid)-1]
	if last.EndMinutes > DefaultCloseMinutes {
		t.Fatalf("last slot ends at %d, past close %d", last.EndMinutes, DefaultCloseMinutes)
	}
	if last.EndMinutes+45 <= DefaultCloseMinutes {
		t.Fatalf("grid stopped early: another slot would still fit before %d", DefaultCloseMinutes)
	}
}

func TestGenerateGridDegenerate(t *testing.T) {
	if grid := GenerateGrid(0, DefaultWindow()); grid != nil {
		t.Fatalf("zero duration produced %d slots, want none", len(grid))
	}
	if grid := GenerateGrid(-15, DefaultWindow()); grid != nil {
		t.Fatalf("negative duration produced %d slots, want none", len(grid))
	}
	if grid := GenerateGrid(DefaultWindow().Length()+1, DefaultWindow()); grid != nil {
		t.Fatalf("oversized duration produced %d slots, want none", len(grid))
	}
}

func TestSlotLabel(t *testing.T) {
	slot := Slot{StartMinutes: 540, EndMinutes: 570}
	if got := slot.Label(); got != "09:00 - 09:30" {
		t.Fatalf("Label() = %q, want %q", got, "09:00 - 09:30")
	}
	if got := slot.StartClock(); got != "09:00" {
		t.Fatalf("StartClock() = %q, want %q", got, "09:00")
	}
}

func TestParseSlotLabelRoundTrip(t *testing.T) {
	for _, slot := range GenerateGrid(45, DefaultWindow()) {
		parsed, err := ParseSlotLabel(slot.Label())
		if err != nil {
			t.Fatalf("ParseSlotLabel(%q): %v", slot.Label(), err)
		}
		if parsed != slot {
			t.Fatalf("ParseSlotLabel(%q) = %+v, want %+v", slot.Label(), parsed, slot)
		}
	}
}

func TestParseSlotLabelRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "09:00", "09:00-09:30", "09:30 - 09:00", "nine - ten"} {
		if _, err := ParseSlotLabel(label); !errors.Is(err, ErrBadSlotLabel) {
			t.Fatalf("ParseSlotLabel(%q) err = %v, want ErrBadSlotLabel", label, err)
		}
	}
}

func TestSlotTakenOverlap(t *testing.T) {
	slot := Slot{StartMinutes: 600, EndMinutes: 630} // 10:00 - 10:30

	cases := []struct {
		name string
		busy Busy
		want bool
	}{
		{"identical interval", Busy{StartMinutes: 600, DurationMinutes: 30}, true},
		{"partial overlap from before", Busy{StartMinutes: 585, DurationMinutes: 30}, true},
		{"partial overlap into next", Busy{StartMinutes: 615, DurationMinutes: 30}, true},
		{"reservation swallows slot", Busy{StartMinutes: 570, DurationMinutes: 120}, true},
		{"slot swallows reservation", Busy{StartMinutes: 610, DurationMinutes: 10}, true},
		{"adjacent before", Busy{StartMinutes: 570, DurationMinutes: 30}, false},
		{"adjacent after", Busy{StartMinutes: 630, DurationMinutes: 30}, false},
		{"far away", Busy{StartMinutes: 900, DurationMinutes: 60}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlotTaken(slot, []Busy{tc.busy}); got != tc.want {
				t.Fatalf("SlotTaken(%+v, %+v) = %v, want %v", slot, tc.busy, got, tc.want)
			}
		})
	}
}

func TestSlotTakenOrderIndependent(t *testing.T) {
	slot := Slot{StartMinutes: 600, EndMinutes: 630}
	a := Busy{StartMinutes: 480, DurationMinutes: 60}
	b := Busy{StartMinutes: 615, DurationMinutes: 15}

	if !SlotTaken(slot, []Busy{a, b}) {
		t.Fatal("slot should be taken regardless of reservation order")
	}
	if !SlotTaken(slot, []Busy{b, a}) {
		t.Fatal("slot should be taken regardless of reservation order")
	}
}

func TestBusyOnDateFiltersAndFallsBack(t *testing.T) {
	intervals := []models.BusyInterval{
		{Start: "2025-06-01T09:00:00", DurationMinutes: 45},
		{Start: "2025-06-01T13:30:00"}, // duration not reported
		{Start: "2025-06-02T09:00:00", DurationMinutes: 45},
		{Start: "not a timestamp", DurationMinutes: 30},
	}

	busy := BusyOnDate("2025-06-01", intervals, 30)
	if len(busy) != 2 {
		t.Fatalf("BusyOnDate kept %d intervals, want 2", len(busy))
	}
	if busy[0].StartMinutes != 540 || busy[0].DurationMinutes != 45 {
		t.Fatalf("first interval = %+v, want 09:00 for 45 min", busy[0])
	}
	if busy[1].StartMinutes != 810 || busy[1].DurationMinutes != 30 {
		t.Fatalf("second interval = %+v, want 13:30 with the fallback duration", busy[1])
	}
}

func TestClassify(t *testing.T) {
	grid := GenerateGrid(30, DefaultWindow())
	busy := []Busy{{StartMinutes: 540, DurationMinutes: 30}}

	statuses := Classify(grid, busy)
	if len(statuses) != len(grid) {
		t.Fatalf("Classify returned %d statuses for %d slots", len(statuses), len(grid))
	}
	if !statuses[0].Taken {
		t.Fatal("09:00 slot should be taken")
	}
	for i := 1; i < len(statuses); i++ {
		if statuses[i].Taken {
			t.Fatalf("slot %s unexpectedly taken", statuses[i].Slot.Label())
		}
	}
}
