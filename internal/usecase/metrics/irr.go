package metrics

import "math"

const (
	irrLow        = -0.9999
	irrHigh       = 10.0
	irrTolerance  = 1e-9
	irrIterations = 200
)

// NPV discounts yearly cash flows (index 0 = today) at rate
func NPV(rate float64, cashflows []float64) float64 {
	npv := 0.0
	for t, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR finds the internal rate of return of yearly cash flows in percent.
// It bisects between -99.99% and 1000%; ok is false when the cash flows do
// not change sign over that interval.
func IRR(cashflows []float64) (float64, bool) {
	if len(cashflows) < 2 {
		return 0, false
	}

	lo, hi := irrLow, irrHigh
	fLo, fHi := NPV(lo, cashflows), NPV(hi, cashflows)
	if math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0 {
		return 0, false
	}

	for i := 0; i < irrIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, cashflows)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid * 100, true
		}
		if fMid*fLo < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	return (lo + hi) / 2 * 100, true
}
