package lib

import "testing"

func TestRoundCurrency(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 10.00, 10.00},
		{"two decimals", 10.55, 10.55},
		{"round down", 10.554, 10.55},
		{"round up", 10.556, 10.56},
		{"half rounds up", 0.125, 0.13},
		{"half rounds up above one", 2.625, 2.63},
		{"zero", 0, 0},
		{"large", 123456.789, 123456.79},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RoundCurrency(c.in); got != c.want {
				t.Errorf("RoundCurrency(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
