// Package pricing holds the demo fair-price and crowdfunding arithmetic.
// All functions are stateless; callers feed catalog numbers in and render
// the results directly.
package pricing

import "math"

// fdiNudge controls how hard demand moves the fair price off its floor.
const fdiNudge = 6.0

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// ToPct renders a [0,1] ratio as a whole percentage.
func ToPct(x float64) int {
	return int(math.Round(Clamp(x, 0, 1) * 100))
}

// RiskPct estimates funding risk as the share of break-even cost not yet
// covered by pledges plus projected sales, as a whole percentage.
func RiskPct(pledgeValue, projectedSales, breakEvenCost float64) int {
	r := 1 - (pledgeValue+projectedSales)/breakEvenCost
	return int(math.Round(Clamp(r, 0, 1) * 100))
}

// FairPriceFromFDI nudges the current fair price between min and cap based
// on the fansourced demand index (0..1). Demand at 0.5 sits on the floor.
func FairPriceFromFDI(min, cap, fdi float64) float64 {
	raw := min + fdiNudge*(fdi-0.5)
	return Clamp(raw, min, cap)
}
