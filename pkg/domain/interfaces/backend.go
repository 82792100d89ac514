package interfaces

//go:generate moq -out mocks/backend_mock.go -pkg mocks . Backend

import (
	"context"

	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// Backend is the remote booking API that owns accounts, vaccines, combos,
// bookings and children
type Backend interface {
	ListComboRows(ctx context.Context) ([]*model.ComboRow, error)
	ListVaccines(ctx context.Context) ([]*model.Vaccine, error)
	Login(ctx context.Context, username, password string) (types.AccessToken, error)
	ListChildren(ctx context.Context, token types.AccessToken) ([]map[string]any, error)
}
