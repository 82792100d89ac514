package usecase

import (
	"context"

	"github.com/secmon-lab/vaxbook/pkg/domain/model"
)

// ComboUseCase defines the interface for the combo catalog
type ComboUseCase interface {
	// ListCombos fetches combo-detail rows and folds them into priced combos
	ListCombos(ctx context.Context) (*ComboCatalog, error)

	// ListVaccines fetches the vaccine price list
	ListVaccines(ctx context.Context) ([]*model.Vaccine, error)
}

// ScheduleUseCase defines the interface for the staff schedule grid
type ScheduleUseCase interface {
	// BuildGrid builds the grid for month/year. nil selects the current value.
	BuildGrid(ctx context.Context, month, year *int) (*model.ScheduleGrid, error)
}

// AuthUseCase defines the interface for authentication operations
type AuthUseCase interface {
	// Login authenticates against the backend and creates a session
	Login(ctx context.Context, username, password string) (*model.Session, error)

	// ValidateSession validates a session by ID and secret
	ValidateSession(ctx context.Context, sessionID, sessionSecret string) (*model.Session, error)

	// DeleteSession deletes a session
	DeleteSession(ctx context.Context, sessionID string) error
}

// ChildUseCase defines the interface for child profiles
type ChildUseCase interface {
	// ListChildren fetches and normalizes the children of the authenticated account
	ListChildren(ctx context.Context, authCtx *model.AuthContext) (*ChildList, error)
}
