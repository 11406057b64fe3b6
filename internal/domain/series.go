package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MinPrice is the floor applied to every synthetic price
const MinPrice = 0.01

// Timeframe is a dashboard chart window
type Timeframe string

const (
	Timeframe1D Timeframe = "1D"
	Timeframe1W Timeframe = "1W"
	Timeframe1M Timeframe = "1M"
	Timeframe1Y Timeframe = "1Y"
)

// Timeframes lists every window in display order
var Timeframes = []Timeframe{Timeframe1D, Timeframe1W, Timeframe1M, Timeframe1Y}

// ParseTimeframe falls back to 1M for unknown input
func ParseTimeframe(s string) Timeframe {
	switch Timeframe(strings.ToUpper(strings.TrimSpace(s))) {
	case Timeframe1D:
		return Timeframe1D
	case Timeframe1W:
		return Timeframe1W
	case Timeframe1Y:
		return Timeframe1Y
	default:
		return Timeframe1M
	}
}

// PricePoint is one synthetic OHLCV candle
type PricePoint struct {
	Index  int
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Valid reports whether the candle respects low <= open,close <= high
func (p PricePoint) Valid() bool {
	return p.Low <= p.Open && p.Low <= p.Close &&
		p.Open <= p.High && p.Close <= p.High &&
		p.Low >= MinPrice && p.Volume >= 0
}

// Repaired returns the candle with prices floored at MinPrice, high and low
// widened to enclose open and close, and a non-negative volume
func (p PricePoint) Repaired() PricePoint {
	p.Open = priceFloor(p.Open)
	p.Close = priceFloor(p.Close)
	p.High = math.Max(priceFloor(p.High), math.Max(p.Open, p.Close))
	p.Low = math.Min(priceFloor(p.Low), math.Min(p.Open, p.Close))
	if !(p.Volume >= 0) || math.IsInf(p.Volume, 1) {
		p.Volume = 0
	}
	return p
}

func priceFloor(v float64) float64 {
	if !(v >= MinPrice) || math.IsInf(v, 1) {
		return MinPrice
	}
	return v
}

// RegionSnapshot is the dashboard view of one region
type RegionSnapshot struct {
	RegionID     string
	Name         string
	Market       AssetClass
	AveragePrice decimal.Decimal
	Inventory    int
	GrowthRate   float64
	PriceData    map[Timeframe][]PricePoint
}

// GlobalSnapshot aggregates every region of a market.
// It is always derived from region snapshots and never stored.
type GlobalSnapshot struct {
	Market       AssetClass
	RegionCount  int
	AveragePrice decimal.Decimal
	Inventory    int
	GrowthRate   float64
	PriceData    map[Timeframe][]PricePoint
}
