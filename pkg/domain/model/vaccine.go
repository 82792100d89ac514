package model

// Vaccine is an entry of the backend vaccine catalog
type Vaccine struct {
	VaccineID   int64   `json:"vaccineId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// PriceIndex maps vaccine names to their price. Later entries with the same
// name overwrite earlier ones.
func PriceIndex(vaccines []*Vaccine) map[string]float64 {
	prices := make(map[string]float64, len(vaccines))
	for _, v := range vaccines {
		if v == nil || v.Name == "" {
			continue
		}
		prices[v.Name] = v.Price
	}
	return prices
}

// PricedCombo is a combo with its computed total price
type PricedCombo struct {
	*Combo
	TotalPrice float64 `json:"totalPrice"`
	// Priced is false when the price catalog was unavailable.
	Priced bool `json:"priced"`
}
