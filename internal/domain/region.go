package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Region is a catalog entry feeding a market dashboard
type Region struct {
	ID           uuid.UUID
	Name         string
	Market       AssetClass
	AveragePrice decimal.Decimal
	Inventory    int
	GrowthRate   float64 // percent per year
	Volatility   float64 // relative, 1.0 = baseline
	BaseVolume   float64
}

// Validate ensures the region adheres to domain rules
func (r *Region) Validate() error {
	if r.Name == "" {
		return errors.New("region name cannot be empty")
	}
	if _, ok := ParseAssetClass(string(r.Market)); !ok {
		return errors.New("region market is invalid")
	}
	if !r.AveragePrice.IsPositive() {
		return errors.New("region average price must be positive")
	}
	if r.Inventory < 0 {
		return errors.New("region inventory cannot be negative")
	}
	if r.Volatility < 0 {
		return errors.New("region volatility cannot be negative")
	}
	if r.BaseVolume < 0 {
		return errors.New("region base volume cannot be negative")
	}
	return nil
}
