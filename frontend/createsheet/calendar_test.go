package createsheet

import (
	"testing"
	"time"
)

func TestBuildMonthGridShape(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	months := []struct {
		year  int
		month time.Month
	}{
		{2026, time.August},
		{2026, time.February},
		{2024, time.February}, // leap
		{2025, time.December},
		{2026, time.January},
	}
	for _, m := range months {
		grid := BuildMonthGrid(m.year, m.month, "", today)
		if len(grid) != 42 {
			t.Fatalf("%d-%v: expected 42 cells, got %d", m.year, m.month, len(grid))
		}
		if grid[0].Date.Weekday() != time.Sunday {
			t.Fatalf("%d-%v: expected grid to start on Sunday, got %v", m.year, m.month, grid[0].Date.Weekday())
		}
		for i := 1; i < 42; i++ {
			if !grid[i].Date.Equal(grid[i-1].Date.AddDate(0, 0, 1)) {
				t.Fatalf("%d-%v: cell %d is not consecutive", m.year, m.month, i)
			}
		}
	}
}

func TestBuildMonthGridFlags(t *testing.T) {
	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2026, time.August, "2026-08-31", today)

	// August 2026 starts on a Saturday, so the grid opens in July.
	if grid[0].DateKey != "2026-07-26" {
		t.Fatalf("expected grid start 2026-07-26, got %s", grid[0].DateKey)
	}

	var sawToday, sawSelected bool
	for _, cell := range grid {
		if cell.InCurrentMonth != (cell.Date.Month() == time.August) {
			t.Fatalf("cell %s: wrong InCurrentMonth", cell.DateKey)
		}
		if cell.IsToday {
			if cell.DateKey != "2026-08-30" {
				t.Fatalf("unexpected today cell %s", cell.DateKey)
			}
			sawToday = true
		}
		if cell.IsPast != cell.Date.Before(Midnight(today)) {
			t.Fatalf("cell %s: wrong IsPast", cell.DateKey)
		}
		if cell.IsSelected {
			if cell.DateKey != "2026-08-31" {
				t.Fatalf("unexpected selected cell %s", cell.DateKey)
			}
			sawSelected = true
		}
	}
	if !sawToday || !sawSelected {
		t.Fatalf("expected both today and selected cells, today=%v selected=%v", sawToday, sawSelected)
	}

	// Overflow days still classify against today.
	if !grid[0].IsPast {
		t.Fatalf("expected July overflow cell to be past")
	}
}

func TestSelectDateRejectsPastCells(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2026, time.August, "2026-08-31", today)

	for _, cell := range grid {
		got := SelectDate("2026-08-31", cell)
		if cell.IsPast && got != "2026-08-31" {
			t.Fatalf("past cell %s changed the selection to %s", cell.DateKey, got)
		}
		if !cell.IsPast && got != cell.DateKey {
			t.Fatalf("selectable cell %s was not selected", cell.DateKey)
		}
	}
}

func TestShiftMonthAcrossYears(t *testing.T) {
	cases := []struct {
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{2026, time.January, -1, 2025, time.December},
		{2026, time.December, 1, 2027, time.January},
		{2026, time.August, 1, 2026, time.September},
		{2026, time.August, -20, 2024, time.December},
	}
	for _, tc := range cases {
		y, m := ShiftMonth(tc.year, tc.month, tc.delta)
		if y != tc.wantYear || m != tc.wantMonth {
			t.Fatalf("shift %d-%v by %d: got %d-%v, want %d-%v", tc.year, tc.month, tc.delta, y, m, tc.wantYear, tc.wantMonth)
		}
	}
}
