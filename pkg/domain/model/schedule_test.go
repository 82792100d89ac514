package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		month    int
		year     int
		expected int
	}{
		{"January 2024", 0, 2024, 31},
		{"February leap year", 1, 2024, 29},
		{"February common year", 1, 2023, 28},
		{"February century not leap", 1, 1900, 28},
		{"February 400-year leap", 1, 2000, 29},
		{"April", 3, 2024, 30},
		{"December", 11, 2024, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := model.DaysInMonth(tt.month, tt.year)
			gt.NoError(t, err).Required()
			gt.Equal(t, tt.expected, len(days))
			for i, d := range days {
				gt.Equal(t, i+1, d)
			}
		})
	}
}

func TestDaysInMonthInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"negative month", -1, 2024},
		{"month 12", 12, 2024},
		{"year zero", 0, 0},
		{"year too large", 0, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := model.DaysInMonth(tt.month, tt.year)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrInvalidInput))
			gt.Nil(t, days)
		})
	}
}

func TestNewScheduleGrid(t *testing.T) {
	roster := &model.Roster{
		Staff: []model.Staff{
			{ID: "s1", Name: "Alice"},
			{ID: "s2", Name: "Bob"},
		},
	}

	t.Run("one row per staff with empty cells", func(t *testing.T) {
		grid, err := model.NewScheduleGrid(1, 2024, roster)
		gt.NoError(t, err).Required()
		gt.Equal(t, 29, len(grid.Days))
		gt.Equal(t, 2, len(grid.Rows))
		gt.Equal(t, "Alice", grid.Rows[0].Staff.Name)
		gt.Equal(t, 29, len(grid.Rows[0].Cells))
		for _, cell := range grid.Rows[1].Cells {
			gt.Equal(t, "", cell)
		}
		gt.Equal(t, "February", grid.MonthName())
	})

	t.Run("changing month rebuilds the grid", func(t *testing.T) {
		feb, err := model.NewScheduleGrid(1, 2023, roster)
		gt.NoError(t, err).Required()
		mar, err := model.NewScheduleGrid(2, 2023, roster)
		gt.NoError(t, err).Required()

		gt.Equal(t, 28, len(feb.Days))
		gt.Equal(t, 31, len(mar.Days))
		gt.Equal(t, 31, len(mar.Rows[0].Cells))
	})

	t.Run("nil roster gives no rows", func(t *testing.T) {
		grid, err := model.NewScheduleGrid(0, 2024, nil)
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, len(grid.Rows))
	})

	t.Run("invalid month fails", func(t *testing.T) {
		_, err := model.NewScheduleGrid(12, 2024, roster)
		gt.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("weekday of a day", func(t *testing.T) {
		grid, err := model.NewScheduleGrid(0, 2024, nil)
		gt.NoError(t, err).Required()
		// 2024-01-01 was a Monday
		gt.Equal(t, time.Monday, grid.Weekday(1))
	})
}

func TestCurrentMonth(t *testing.T) {
	month, year := model.CurrentMonth(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, 9, month)
	gt.Equal(t, 2026, year)
}

func TestRosterValidate(t *testing.T) {
	t.Run("valid roster", func(t *testing.T) {
		gt.NoError(t, model.DefaultRoster().Validate())
	})

	t.Run("empty roster is valid", func(t *testing.T) {
		roster := &model.Roster{}
		gt.NoError(t, roster.Validate())
	})

	t.Run("error when ID is empty", func(t *testing.T) {
		roster := &model.Roster{Staff: []model.Staff{{Name: "No ID"}}}
		gt.Error(t, roster.Validate())
	})

	t.Run("error when name is empty", func(t *testing.T) {
		roster := &model.Roster{Staff: []model.Staff{{ID: "s1"}}}
		gt.Error(t, roster.Validate())
	})

	t.Run("error when duplicate ID exists", func(t *testing.T) {
		roster := &model.Roster{Staff: []model.Staff{
			{ID: "s1", Name: "A"},
			{ID: "s1", Name: "B"},
		}}
		gt.Error(t, roster.Validate())
	})
}
