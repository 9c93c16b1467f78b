package pricing

import "testing"

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 89.99, 0, 89.99},
		{"negative discount ignored", 50, -10, 50},
		{"fifteen percent", 100, 15, 85},
		{"full discount", 45, 100, 0},
		{"zero price", 0, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivePrice(tt.price, tt.discount)
			if got != tt.want {
				t.Errorf("EffectivePrice(%v, %v) = %v, want %v", tt.price, tt.discount, got, tt.want)
			}
		})
	}
}

func TestEffectivePriceNeverExceedsPrice(t *testing.T) {
	prices := []float64{0, 0.01, 1, 24.99, 89.99, 1000}
	discounts := []float64{0, 1, 15, 50, 99, 100}
	for _, p := range prices {
		for _, d := range discounts {
			got := EffectivePrice(p, d)
			if got > p {
				t.Errorf("EffectivePrice(%v, %v) = %v, exceeds listed price", p, d, got)
			}
		}
		if EffectivePrice(p, 0) != p {
			t.Errorf("EffectivePrice(%v, 0) changed the price", p)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(85); got != "85.00" {
		t.Errorf("Format(85) = %q, want %q", got, "85.00")
	}
	if got := Format(24.991); got != "24.99" {
		t.Errorf("Format(24.991) = %q, want %q", got, "24.99")
	}
}
