package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Month bounds use the zero-based numbering of the schedule UI (0 = January).
const (
	MinMonth = 0
	MaxMonth = 11
	MinYear  = 1
	MaxYear  = 9999
)

// DaysInMonth returns [1..N] where N is the number of days of the given
// zero-based month in the given year.
func DaysInMonth(month, year int) ([]int, error) {
	if month < MinMonth || month > MaxMonth {
		return nil, goerr.Wrap(ErrInvalidInput, "month out of range",
			goerr.V("month", month))
	}
	if year < MinYear || year > MaxYear {
		return nil, goerr.Wrap(ErrInvalidInput, "year out of range",
			goerr.V("year", year))
	}

	// Day 0 of the following month is the last day of this one. time.Month is
	// one-based, so the following month is month+2.
	n := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days, nil
}

// StaffRow is one staff member's line in the schedule grid
type StaffRow struct {
	Staff Staff    `json:"staff"`
	Cells []string `json:"cells"`
}

// ScheduleGrid is a staff-by-day table for one month
type ScheduleGrid struct {
	Month int        `json:"month"`
	Year  int        `json:"year"`
	Days  []int      `json:"days"`
	Rows  []StaffRow `json:"rows"`
}

// NewScheduleGrid builds the grid for month/year with one empty cell per staff
// member and day. The grid is always built from scratch.
func NewScheduleGrid(month, year int, roster *Roster) (*ScheduleGrid, error) {
	days, err := DaysInMonth(month, year)
	if err != nil {
		return nil, err
	}

	grid := &ScheduleGrid{
		Month: month,
		Year:  year,
		Days:  days,
		Rows:  make([]StaffRow, 0),
	}
	if roster == nil {
		return grid, nil
	}

	for _, s := range roster.Staff {
		grid.Rows = append(grid.Rows, StaffRow{
			Staff: s,
			Cells: make([]string, len(days)),
		})
	}
	return grid, nil
}

// MonthName returns the English name of the grid's month
func (g *ScheduleGrid) MonthName() string {
	return time.Month(g.Month + 1).String()
}

// Weekday returns the weekday of the given day of the grid's month
func (g *ScheduleGrid) Weekday(day int) time.Weekday {
	return time.Date(g.Year, time.Month(g.Month+1), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// CurrentMonth returns the zero-based month and the year of t
func CurrentMonth(t time.Time) (month, year int) {
	return int(t.Month()) - 1, t.Year()
}
