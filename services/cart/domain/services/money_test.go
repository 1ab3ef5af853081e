package services

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.3, "$.30"},
		{0.6, "$.60"},
		{0, "$.00"},
		{0.01, "$.01"},
		{0.99, "$.99"},
		{1, "$1.00"},
		{17.2, "$17.20"},
		{999050.6, "$999050.60"},
		{1234567.891, "$1234567.89"},
		{0.125, "$.12"}, // exact tie rounds to even
		{0.375, "$.38"},
		{-0.3, "-$.30"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDiscount(t *testing.T) {
	if got := FormatDiscount(0); got != "-" {
		t.Errorf("FormatDiscount(0) = %q, want %q", got, "-")
	}
	if got := FormatDiscount(50); got != "50%" {
		t.Errorf("FormatDiscount(50) = %q, want %q", got, "50%")
	}
}
