package services

import (
	"testing"
)

func TestComputeLineTotal(t *testing.T) {
	cases := []struct {
		name            string
		mrp             float64
		quantity        int
		discountPercent float64
		gstPercent      float64
		want            float64
	}{
		{"no discount no gst", 100.00, 1, 0, 0, 100.00},
		{"quantity only", 50.00, 4, 0, 0, 200.00},
		{"discount then gst", 100.00, 3, 10, 18, 318.60},
		{"full discount", 99.99, 2, 100, 18, 0.00},
		{"gst only", 200.00, 1, 0, 5, 210.00},
		{"discount only", 80.00, 2, 25, 0, 120.00},
		{"fractional result", 33.33, 1, 0, 12, 37.33},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeLineTotal(c.mrp, c.quantity, c.discountPercent, c.gstPercent)
			if got != c.want {
				t.Errorf("ComputeLineTotal(%v, %d, %v, %v) = %v, want %v",
					c.mrp, c.quantity, c.discountPercent, c.gstPercent, got, c.want)
			}
		})
	}
}

func TestComputeLineTotalDeterministic(t *testing.T) {
	first := ComputeLineTotal(123.45, 7, 12.5, 18)
	for i := 0; i < 10; i++ {
		if got := ComputeLineTotal(123.45, 7, 12.5, 18); got != first {
			t.Fatalf("run %d gave %v, first run gave %v", i, got, first)
		}
	}
}

func TestComputeLineTotalRoundsOnce(t *testing.T) {
	// 9.99 * 3 * 0.9 * 1.18 = 31.82814. Rounding the discounted
	// subtotal first would land on 31.82 instead.
	got := ComputeLineTotal(9.99, 3, 10, 18)
	if got != 31.83 {
		t.Errorf("ComputeLineTotal(9.99, 3, 10, 18) = %v, want 31.83", got)
	}
}
