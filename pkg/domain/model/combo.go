package model

import (
	"math"
	"strings"

	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// ComboRow is one combo-detail record from the booking backend. Each row links a
// single vaccine to a single combo, so a combo with N vaccines arrives as N rows.
type ComboRow struct {
	// ComboID is a pointer so that a missing or null id is not mistaken for 0.
	ComboID     *types.ComboID `json:"comboId"`
	ComboName   string         `json:"comboName"`
	Description string         `json:"description"`
	AgeGroup    string         `json:"ageGroup"`
	SaleOff     float64        `json:"saleOff"`
	VaccineName string         `json:"vaccineName"`
}

// Combo is a vaccine bundle folded from its combo-detail rows
type Combo struct {
	ComboID     types.ComboID `json:"comboId"`
	ComboName   string        `json:"comboName"`
	Description string        `json:"description"`
	AgeGroup    string        `json:"ageGroup"`
	SaleOff     float64       `json:"saleOff"`
	Vaccines    []string      `json:"vaccines"`
}

// ComboGroup is the result of GroupCombos
type ComboGroup struct {
	Combos []*Combo
	// Malformed counts rows dropped for having no combo id.
	Malformed int
	// Conflicts counts rows whose scalar fields disagree with the first row of
	// the same combo. The first row wins.
	Conflicts int
}

// GroupCombos folds flat combo-detail rows into one Combo per distinct combo id.
// Combos come out in the order their id was first seen and vaccines keep input
// order, duplicates included.
func GroupCombos(rows []*ComboRow) *ComboGroup {
	result := &ComboGroup{
		Combos: make([]*Combo, 0),
	}
	index := make(map[types.ComboID]*Combo)

	for _, row := range rows {
		if row == nil || row.ComboID == nil {
			result.Malformed++
			continue
		}

		combo, ok := index[*row.ComboID]
		if !ok {
			combo = &Combo{
				ComboID:     *row.ComboID,
				ComboName:   row.ComboName,
				Description: row.Description,
				AgeGroup:    row.AgeGroup,
				SaleOff:     row.SaleOff,
				Vaccines:    make([]string, 0, 1),
			}
			index[*row.ComboID] = combo
			result.Combos = append(result.Combos, combo)
		} else if !combo.sameScalars(row) {
			result.Conflicts++
		}

		combo.Vaccines = append(combo.Vaccines, row.VaccineName)
	}

	return result
}

func (c *Combo) sameScalars(row *ComboRow) bool {
	return c.ComboName == row.ComboName &&
		c.Description == row.Description &&
		c.AgeGroup == row.AgeGroup &&
		c.SaleOff == row.SaleOff
}

// VaccineList returns vaccine names joined for display in a single table cell
func (c *Combo) VaccineList() string {
	return strings.Join(c.Vaccines, ", ")
}

// TotalPrice sums the catalog prices of the combo's vaccines and applies the
// sale percentage. Names missing from prices contribute nothing and are returned
// in missing.
func (c *Combo) TotalPrice(prices map[string]float64) (total float64, missing []string) {
	for _, name := range c.Vaccines {
		price, ok := prices[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		total += price
	}

	saleOff := math.Min(math.Max(c.SaleOff, 0), 100)
	total = total * (100 - saleOff) / 100
	return math.Round(total*100) / 100, missing
}
