package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
)

// Schedule implements ScheduleUseCase
type Schedule struct {
	roster *model.Roster
	now    func() time.Time
}

// ScheduleOption configures Schedule
type ScheduleOption func(*Schedule)

// WithClock sets the clock used to resolve the current month
func WithClock(now func() time.Time) ScheduleOption {
	return func(s *Schedule) {
		s.now = now
	}
}

// NewSchedule creates a new Schedule use case for the given staff roster
func NewSchedule(roster *model.Roster, opts ...ScheduleOption) ScheduleUseCase {
	s := &Schedule{
		roster: roster,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildGrid builds the staff-by-day grid. A missing or invalid selection falls
// back to the current month and year instead of failing the page.
func (s *Schedule) BuildGrid(ctx context.Context, month, year *int) (*model.ScheduleGrid, error) {
	logger := ctxlog.From(ctx)
	curMonth, curYear := model.CurrentMonth(s.now())

	m, y := curMonth, curYear
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}

	grid, err := model.NewScheduleGrid(m, y, s.roster)
	if err == nil {
		return grid, nil
	}

	logger.Warn("Invalid schedule selection, falling back to current month",
		"month", m,
		"year", y,
		"error", err,
	)
	return model.NewScheduleGrid(curMonth, curYear, s.roster)
}
