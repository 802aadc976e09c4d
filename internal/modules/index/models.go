// Package index provides the static COIN50 constituent table, the top-N selector and
// the methodology text shown on the overview tab.
package index

import "github.com/shopspring/decimal"

// Constituent is one asset in the index holding list.
// Weight is a percentage literal (50.30 means 50.30%) and is never derived.
type Constituent struct {
	ID     string          `json:"id"`   // CoinGecko-style identifier (e.g., 'avalanche-2')
	Name   string          `json:"name"` // Display name (e.g., 'Avalanche')
	Weight decimal.Decimal `json:"weight"`
	Logo   string          `json:"logo"` // Absolute image URL
}

// WeightPercent returns the weight formatted with two decimals and a percent sign
func (c Constituent) WeightPercent() string {
	return c.Weight.StringFixed(2) + "%"
}
