// AngelaMos | 2026
// money_test.go

package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", "45000", 45000},
		{"currency prefix", "₹ 45,000", 45000},
		{"decimal", "1200.50", 1200.5},
		{"letters interleaved", "12a3", 123},
		{"empty", "", 0},
		{"symbols only", "₹ ,", 0},
		{"negative sign stripped", "-500", 500},
		{"second dot truncates", "12.5.9", 12.5},
		{"lone dot", ".", 0},
		{"spaces", " 7 000 ", 7000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "₹ 0"},
		{"three digits", 950, "₹ 950"},
		{"four digits", 4500, "₹ 4,500"},
		{"five digits", 45000, "₹ 45,000"},
		{"lakh", 100000, "₹ 1,00,000"},
		{"ten lakh", 1000000, "₹ 10,00,000"},
		{"crore", 10000000, "₹ 1,00,00,000"},
		{"rounds to whole", 1200.6, "₹ 1,201"},
		{"negative", -5000, "₹ -5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestComputeDelta(t *testing.T) {
	t.Run("partial payment", func(t *testing.T) {
		d := ComputeDelta(45000, 20000)
		assert.Equal(t, float64(25000), d.LeftAmount)
		assert.Equal(t, "₹ 25,000", d.LeftDisplay)
		assert.Equal(t, "₹ 45,000", d.TotalDisplay)
		assert.Equal(t, "₹ 20,000", d.GivenDisplay)
	})

	t.Run("overpayment clamps display", func(t *testing.T) {
		d := ComputeDelta(10000, 12000)
		assert.Equal(t, float64(-2000), d.LeftAmount)
		assert.Equal(t, "₹ 0", d.LeftDisplay)
	})

	t.Run("fully paid", func(t *testing.T) {
		d := ComputeDelta(10000, 10000)
		assert.Equal(t, float64(0), d.LeftAmount)
		assert.Equal(t, "₹ 0", d.LeftDisplay)
	})
}
