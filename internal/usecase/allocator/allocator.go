package allocator

import (
	"errors"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// CentPlaces is the precision every allocated amount is rounded to
const CentPlaces = 2

// Allocate splits a total across weights, e.g. a fund commitment across its
// capital calls, in whole cents.
// Logic (largest remainder):
//  1. Round the total to cents
//  2. Give each positive weight its proportional share, truncated to cents
//  3. Hand the leftover cents out one at a time, largest truncated remainder
//     first; ties go to the later weight
//
// Safety: Ensures the allocations sum to the rounded total exactly (no penny lost)
// and no allocation is negative
func Allocate(totalAmount decimal.Decimal, weights []float64) ([]decimal.Decimal, error) {
	if totalAmount.IsNegative() {
		return nil, errors.New("total amount cannot be negative")
	}

	if len(weights) == 0 {
		return nil, errors.New("weights list cannot be empty")
	}

	sum := decimal.Zero
	last := -1
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, errors.New("weights must be finite and non-negative")
		}
		if w > 0 {
			sum = sum.Add(decimal.NewFromFloat(w))
			last = i
		}
	}

	total := totalAmount.Round(CentPlaces)
	allocation := make([]decimal.Decimal, len(weights))
	for i := range allocation {
		allocation[i] = decimal.Zero
	}

	// Nothing to weigh against: the whole amount goes to the last slot
	if last < 0 {
		allocation[len(allocation)-1] = total
		return allocation, nil
	}

	// Step 1: proportional shares, truncated to cents
	type remainder struct {
		index int
		value decimal.Decimal
	}
	remainders := make([]remainder, 0, len(weights))
	allocatedSoFar := decimal.Zero
	for i, w := range weights {
		if w == 0 {
			continue
		}
		exact := total.Mul(decimal.NewFromFloat(w)).Div(sum)
		share := exact.Truncate(CentPlaces)
		allocation[i] = share
		allocatedSoFar = allocatedSoFar.Add(share)
		remainders = append(remainders, remainder{index: i, value: exact.Sub(share)})
	}

	// Step 2: leftover cents by largest remainder
	sort.Slice(remainders, func(a, b int) bool {
		if c := remainders[a].value.Cmp(remainders[b].value); c != 0 {
			return c > 0
		}
		return remainders[a].index > remainders[b].index
	})
	cent := decimal.New(1, -CentPlaces)
	leftover := total.Sub(allocatedSoFar)
	for k := 0; leftover.IsPositive(); k++ {
		r := remainders[k%len(remainders)]
		allocation[r.index] = allocation[r.index].Add(cent)
		leftover = leftover.Sub(cent)
	}

	// Safety check: Ensure the allocations add back up to the total
	totalAllocated := decimal.Zero
	for _, amount := range allocation {
		if amount.IsNegative() {
			return nil, errors.New("allocation cannot be negative")
		}
		totalAllocated = totalAllocated.Add(amount)
	}

	if !totalAllocated.Equal(total) {
		return nil, errors.New("total allocation does not equal total amount")
	}

	return allocation, nil
}
