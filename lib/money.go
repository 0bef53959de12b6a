package lib

import "math"

// RoundCurrency rounds an amount to 2 decimal places using round-half-up.
// Every bill line total goes through this exact function so the rounding
// policy stays uniform across the system.
func RoundCurrency(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}
