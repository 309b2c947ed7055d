package analyzer

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"NaN float", math.NaN(), 0},
		{"plain integer string", "1200", 1200},
		{"plain float string", "1234.56", 1234.56},
		{"comma decimal", "1234,56", 1234.56},
		{"euro prefix", "€1200", 1200},
		{"dollar prefix", "$500.25", 500.25},
		{"pound prefix", "£99", 99},
		{"yen prefix", "¥300", 300},
		{"rupee prefix", "₹42", 42},
		{"internal spaces", "1 200 300", 1200300},
		{"symbol and comma", "€1 234,50", 1234.5},
		{"surrounding whitespace", "  42.5  ", 42.5},
		{"negative", "-150.75", -150.75},
		{"garbage text", "abc", 0},
		{"mixed garbage", "12abc", 0},
		{"float64", 1234.5, 1234.5},
		{"float32", float32(2.5), 2.5},
		{"int", 42, 42},
		{"int64", int64(-7), -7},
		{"int32 via default path", int32(9), 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.value); got != tt.want {
				t.Errorf("Normalize(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeThousandsSeparatorCaveat(t *testing.T) {
	// Commas are decimal separators, never thousands separators. "1,234" is
	// one point two three four, documented behavior.
	if got := Normalize("1,234"); got != 1.234 {
		t.Errorf("Normalize(%q) = %v, want 1.234", "1,234", got)
	}
}

func TestNormalizeNumericPassThroughIsExact(t *testing.T) {
	values := []float64{0, 0.1, 1e15, -3.0000000000000004, math.MaxFloat64}
	for _, v := range values {
		if got := Normalize(v); got != v {
			t.Errorf("Normalize(%v) = %v, want identical value", v, got)
		}
	}
}
