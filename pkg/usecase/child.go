package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
)

// ChildList is the normalized child list of an account
type ChildList struct {
	Children []*model.Child `json:"children"`
	Skipped  int            `json:"skipped"`
}

// Child implements ChildUseCase
type Child struct {
	backend interfaces.Backend
	metrics *metrics.Backend
}

// NewChild creates a new Child use case
func NewChild(backend interfaces.Backend, m *metrics.Backend) ChildUseCase {
	return &Child{
		backend: backend,
		metrics: m,
	}
}

// ListChildren fetches the account's children with its own token
func (c *Child) ListChildren(ctx context.Context, authCtx *model.AuthContext) (*ChildList, error) {
	if !authCtx.IsAuthenticated() {
		return nil, goerr.Wrap(model.ErrUnauthorized, "authentication required")
	}

	raws, err := c.backend.ListChildren(ctx, authCtx.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch children")
	}

	list := &ChildList{
		Children: make([]*model.Child, 0, len(raws)),
	}
	for _, raw := range raws {
		child, err := model.NormalizeChild(raw)
		if err != nil {
			ctxlog.From(ctx).Warn("Skipped child record", "error", err)
			list.Skipped++
			continue
		}
		list.Children = append(list.Children, child)
	}
	c.metrics.AddDropped("child", list.Skipped)

	return list, nil
}
