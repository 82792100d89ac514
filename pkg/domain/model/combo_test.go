package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

func comboID(v int64) *types.ComboID {
	id := types.ComboID(v)
	return &id
}

func TestGroupCombos(t *testing.T) {
	t.Run("groups rows sharing a combo id", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(1), ComboName: "5-in-1", VaccineName: "DTaP"},
			{ComboID: comboID(1), ComboName: "5-in-1", VaccineName: "Hib"},
			{ComboID: comboID(2), ComboName: "MMR", VaccineName: "Measles"},
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 2, len(result.Combos))
		gt.Equal(t, 0, result.Malformed)
		gt.Equal(t, 0, result.Conflicts)

		gt.Equal(t, types.ComboID(1), result.Combos[0].ComboID)
		gt.Equal(t, "5-in-1", result.Combos[0].ComboName)
		gt.Equal(t, []string{"DTaP", "Hib"}, result.Combos[0].Vaccines)

		gt.Equal(t, types.ComboID(2), result.Combos[1].ComboID)
		gt.Equal(t, "MMR", result.Combos[1].ComboName)
		gt.Equal(t, []string{"Measles"}, result.Combos[1].Vaccines)
	})

	t.Run("empty input returns empty list", func(t *testing.T) {
		result := model.GroupCombos(nil)
		gt.V(t, result.Combos).NotNil()
		gt.Equal(t, 0, len(result.Combos))

		result = model.GroupCombos([]*model.ComboRow{})
		gt.Equal(t, 0, len(result.Combos))
	})

	t.Run("unique ids give one single-vaccine combo per row", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(10), VaccineName: "A"},
			{ComboID: comboID(20), VaccineName: "B"},
			{ComboID: comboID(30), VaccineName: "C"},
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 3, len(result.Combos))
		for i, combo := range result.Combos {
			gt.Equal(t, *rows[i].ComboID, combo.ComboID)
			gt.Equal(t, []string{rows[i].VaccineName}, combo.Vaccines)
		}
	})

	t.Run("output follows first-seen order, not id order", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(3), VaccineName: "X"},
			{ComboID: comboID(1), VaccineName: "Y"},
			{ComboID: comboID(3), VaccineName: "Z"},
			{ComboID: comboID(2), VaccineName: "W"},
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 3, len(result.Combos))
		gt.Equal(t, types.ComboID(3), result.Combos[0].ComboID)
		gt.Equal(t, types.ComboID(1), result.Combos[1].ComboID)
		gt.Equal(t, types.ComboID(2), result.Combos[2].ComboID)
		gt.Equal(t, []string{"X", "Z"}, result.Combos[0].Vaccines)
	})

	t.Run("duplicate vaccine names are kept", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(1), VaccineName: "Hib"},
			{ComboID: comboID(1), VaccineName: "Hib"},
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 1, len(result.Combos))
		gt.Equal(t, []string{"Hib", "Hib"}, result.Combos[0].Vaccines)
	})

	t.Run("rows without combo id are skipped and counted", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: nil, ComboName: "broken", VaccineName: "A"},
			{ComboID: comboID(1), ComboName: "ok", VaccineName: "B"},
			nil,
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 2, result.Malformed)
		gt.Equal(t, 1, len(result.Combos))
		gt.Equal(t, []string{"B"}, result.Combos[0].Vaccines)
	})

	t.Run("zero is a valid combo id", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(0), ComboName: "zero", VaccineName: "A"},
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 0, result.Malformed)
		gt.Equal(t, 1, len(result.Combos))
		gt.Equal(t, types.ComboID(0), result.Combos[0].ComboID)
	})

	t.Run("first-seen scalar values win on conflict", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(1), ComboName: "first", AgeGroup: "0-2", SaleOff: 10, VaccineName: "A"},
			{ComboID: comboID(1), ComboName: "second", AgeGroup: "3-5", SaleOff: 20, VaccineName: "B"},
			{ComboID: comboID(1), ComboName: "first", AgeGroup: "0-2", SaleOff: 10, VaccineName: "C"},
		}

		result := model.GroupCombos(rows)
		gt.Equal(t, 1, result.Conflicts)
		gt.Equal(t, "first", result.Combos[0].ComboName)
		gt.Equal(t, "0-2", result.Combos[0].AgeGroup)
		gt.Equal(t, 10.0, result.Combos[0].SaleOff)
		gt.Equal(t, []string{"A", "B", "C"}, result.Combos[0].Vaccines)
	})

	t.Run("grouping is deterministic", func(t *testing.T) {
		rows := []*model.ComboRow{
			{ComboID: comboID(2), VaccineName: "A"},
			{ComboID: comboID(1), VaccineName: "B"},
			{ComboID: comboID(2), VaccineName: "C"},
		}

		first := model.GroupCombos(rows)
		second := model.GroupCombos(rows)
		gt.Equal(t, first, second)
	})
}

func TestComboVaccineList(t *testing.T) {
	combo := &model.Combo{Vaccines: []string{"DTaP", "Hib", "IPV"}}
	gt.Equal(t, "DTaP, Hib, IPV", combo.VaccineList())

	empty := &model.Combo{}
	gt.Equal(t, "", empty.VaccineList())
}

func TestComboTotalPrice(t *testing.T) {
	prices := map[string]float64{
		"DTaP": 100,
		"Hib":  50,
	}

	t.Run("applies sale percentage", func(t *testing.T) {
		combo := &model.Combo{SaleOff: 10, Vaccines: []string{"DTaP", "Hib"}}
		total, missing := combo.TotalPrice(prices)
		gt.Equal(t, 135.0, total)
		gt.Equal(t, 0, len(missing))
	})

	t.Run("reports vaccines without a price", func(t *testing.T) {
		combo := &model.Combo{Vaccines: []string{"DTaP", "Unknown"}}
		total, missing := combo.TotalPrice(prices)
		gt.Equal(t, 100.0, total)
		gt.Equal(t, []string{"Unknown"}, missing)
	})

	t.Run("sale percentage is clamped", func(t *testing.T) {
		over := &model.Combo{SaleOff: 150, Vaccines: []string{"DTaP"}}
		total, _ := over.TotalPrice(prices)
		gt.Equal(t, 0.0, total)

		under := &model.Combo{SaleOff: -5, Vaccines: []string{"DTaP"}}
		total, _ = under.TotalPrice(prices)
		gt.Equal(t, 100.0, total)
	})
}

func TestPriceIndex(t *testing.T) {
	prices := model.PriceIndex([]*model.Vaccine{
		{Name: "DTaP", Price: 100},
		nil,
		{Name: "", Price: 1},
		{Name: "DTaP", Price: 120},
	})
	gt.Equal(t, 1, len(prices))
	gt.Equal(t, 120.0, prices["DTaP"])
}
