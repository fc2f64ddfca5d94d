package types

import "testing"

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 100.005, want: 100.01},
		{in: 99.994, want: 99.99},
		{in: -3.555, want: -3.56},
	}
	for _, tt := range tests {
		if got := RoundCurrency(tt.in); got != tt.want {
			t.Fatalf("RoundCurrency(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(1234.5); got != "1234.50" {
		t.Fatalf("unexpected currency string %q", got)
	}
	if got := FormatCurrency(0); got != "0.00" {
		t.Fatalf("unexpected zero string %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(33.333333); got != "33.3" {
		t.Fatalf("unexpected percent string %q", got)
	}
	if got := FormatPercent(0); got != "0.0" {
		t.Fatalf("unexpected zero percent %q", got)
	}
}
