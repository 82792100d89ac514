package interfaces

import (
	"context"

	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// Repository defines the interface for session persistence. Business data lives
// on the booking backend and is never stored here.
type Repository interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id types.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id types.SessionID) error

	// Close closes the repository connection
	Close() error
}
