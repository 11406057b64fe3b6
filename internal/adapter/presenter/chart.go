package presenter

import (
	"math"

	"github.com/simaogato/tokenvest-backend/internal/domain"
)

// Scale maps a value domain linearly onto a pixel range
type Scale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// NewScale creates a linear Scale
func NewScale(domainMin, domainMax, rangeMin, rangeMax float64) Scale {
	return Scale{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}
}

// Map converts a domain value to a range value.
// A degenerate domain maps every value to the middle of the range.
func (s Scale) Map(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return (s.RangeMin + s.RangeMax) / 2
	}
	return s.RangeMin + (v-s.DomainMin)/span*(s.RangeMax-s.RangeMin)
}

// Candle is a candlestick in pixel coordinates; y grows downward
type Candle struct {
	X          float64
	Width      float64
	BodyTop    float64
	BodyBottom float64
	WickTop    float64
	WickBottom float64
	Up         bool
}

// Point is a pixel coordinate
type Point struct {
	X, Y float64
}

// PriceRange returns the lowest low and highest high of a series
func PriceRange(points []domain.PricePoint) (lo, hi float64) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi = points[0].Low, points[0].High
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Low)
		hi = math.Max(hi, p.High)
	}
	return lo, hi
}

// CandleCoords lays a series out in a width x height box with padding on every side
func CandleCoords(points []domain.PricePoint, width, height, padding float64) []Candle {
	candles := make([]Candle, 0, len(points))
	if len(points) == 0 {
		return candles
	}

	lo, hi := PriceRange(points)
	y := NewScale(lo, hi, height-padding, padding)
	slot := (width - 2*padding) / float64(len(points))

	for i, p := range points {
		top, bottom := math.Max(p.Open, p.Close), math.Min(p.Open, p.Close)
		candles = append(candles, Candle{
			X:          padding + slot*(float64(i)+0.5),
			Width:      slot * 0.6,
			BodyTop:    y.Map(top),
			BodyBottom: y.Map(bottom),
			WickTop:    y.Map(p.High),
			WickBottom: y.Map(p.Low),
			Up:         p.Close >= p.Open,
		})
	}
	return candles
}

// LinePoints lays values out as an evenly spaced polyline, e.g. a projection chart
func LinePoints(values []float64, width, height, padding float64) []Point {
	out := make([]Point, 0, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	x := NewScale(0, float64(len(values)-1), padding, width-padding)
	y := NewScale(lo, hi, height-padding, padding)
	for i, v := range values {
		out = append(out, Point{X: x.Map(float64(i)), Y: y.Map(v)})
	}
	return out
}
