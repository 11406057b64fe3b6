package domain

// YearProjection is the state of a holding at the end of one projected year
type YearProjection struct {
	Year                 int
	Value                float64 // asset value after this year's compounding and reinvestment
	PeriodicCosts        map[CostKind]float64
	CumulativeCosts      float64
	Reinvested           float64
	CumulativeReinvested float64
	Deployed             float64 // capital put to work so far
	NetValue             float64 // Value + undeployed capital - CumulativeCosts
}

// TotalCosts sums this year's periodic costs
func (y YearProjection) TotalCosts() float64 {
	total := 0.0
	for _, c := range y.PeriodicCosts {
		total += c
	}
	return total
}

// Summary holds the derived metrics of a finished projection
type Summary struct {
	Principal           float64
	Years               int
	FinalValue          float64
	NetFinalValue       float64
	TotalCosts          float64
	TotalReinvested     float64
	TotalReturnPct      float64
	AnnualizedReturnPct float64
	// AnnualizedDefined is false when the net final value is not positive,
	// in which case AnnualizedReturnPct is reported as 0
	AnnualizedDefined bool
	Multiple          float64
}
