package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/interfaces"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/utils/metrics"
)

// ComboCatalog is the combo table shown on the combos page
type ComboCatalog struct {
	Combos    []*model.PricedCombo `json:"combos"`
	Malformed int                  `json:"malformed"`
	Conflicts int                  `json:"conflicts"`
	// Priced is false when the vaccine price list could not be fetched.
	Priced bool `json:"priced"`
}

// Combo implements ComboUseCase
type Combo struct {
	backend interfaces.Backend
	metrics *metrics.Backend
}

// NewCombo creates a new Combo use case. m may be nil.
func NewCombo(backend interfaces.Backend, m *metrics.Backend) ComboUseCase {
	return &Combo{
		backend: backend,
		metrics: m,
	}
}

// ListCombos fetches combo-detail rows, groups them and attaches total prices
func (c *Combo) ListCombos(ctx context.Context) (*ComboCatalog, error) {
	logger := ctxlog.From(ctx)

	rows, err := c.backend.ListComboRows(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch combo details")
	}

	group := model.GroupCombos(rows)
	if group.Malformed > 0 {
		logger.Warn("Skipped combo rows without combo ID",
			"malformed", group.Malformed,
			"rows", len(rows),
		)
		c.metrics.AddDropped("combo_row", group.Malformed)
	}
	if group.Conflicts > 0 {
		logger.Warn("Combo rows disagree on combo attributes, first row kept",
			"conflicts", group.Conflicts,
		)
	}

	catalog := &ComboCatalog{
		Combos:    make([]*model.PricedCombo, 0, len(group.Combos)),
		Malformed: group.Malformed,
		Conflicts: group.Conflicts,
	}

	var prices map[string]float64
	vaccines, err := c.backend.ListVaccines(ctx)
	if err != nil {
		// Combos are still useful without totals
		logger.Warn("Failed to fetch vaccine prices", "error", err)
	} else {
		prices = model.PriceIndex(vaccines)
		catalog.Priced = true
	}

	for _, combo := range group.Combos {
		priced := &model.PricedCombo{Combo: combo, Priced: catalog.Priced}
		if catalog.Priced {
			total, missing := combo.TotalPrice(prices)
			priced.TotalPrice = total
			if len(missing) > 0 {
				logger.Debug("Vaccines without price in combo",
					"comboID", combo.ComboID,
					"missing", missing,
				)
			}
		}
		catalog.Combos = append(catalog.Combos, priced)
	}

	return catalog, nil
}

// ListVaccines fetches the vaccine price list
func (c *Combo) ListVaccines(ctx context.Context) ([]*model.Vaccine, error) {
	vaccines, err := c.backend.ListVaccines(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch vaccines")
	}
	return vaccines, nil
}
