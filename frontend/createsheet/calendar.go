package createsheet

import "time"

// DateKeyLayout is the canonical selection key format.
const DateKeyLayout = "2006-01-02"

// CalendarDay is one cell of the month grid. Cells are ephemeral and
// rebuilt on every render.
type CalendarDay struct {
	Date           time.Time
	Day            int
	DateKey        string
	InCurrentMonth bool
	IsToday        bool
	IsPast         bool
	IsSelected     bool
}

// Midnight strips the time of day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BuildMonthGrid produces the fixed 6x7 grid for a reference month.
// Cell 0 is the Sunday on or before the 1st, so overflow days from the
// neighbouring months appear with InCurrentMonth false but otherwise
// correct flags.
func BuildMonthGrid(year int, month time.Month, selected string, today time.Time) []CalendarDay {
	today = Midnight(today)
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([]CalendarDay, 0, 42)
	for i := 0; i < 42; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(DateKeyLayout)
		grid = append(grid, CalendarDay{
			Date:           d,
			Day:            d.Day(),
			DateKey:        key,
			InCurrentMonth: d.Month() == month && d.Year() == year,
			IsToday:        d.Equal(today),
			IsPast:         d.Before(today),
			IsSelected:     key == selected,
		})
	}
	return grid
}

// SelectDate applies a tap on a grid cell: past days are not
// selectable, so the current selection survives them.
func SelectDate(selected string, day CalendarDay) string {
	if day.IsPast {
		return selected
	}
	return day.DateKey
}

// ShiftMonth moves the reference month by delta months, normalising
// across year boundaries. Navigation is unbounded in both directions.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}
