package fenv

import (
	"math"
	"testing"
)

func TestExp10(t *testing.T) {
	inf := float32(math.Inf(1))
	snan := math.Float32frombits(0x7f800001)
	qnan := float32(math.NaN())

	tests := []struct {
		name string
		x, y float32
		want Exception
	}{
		{"normal", 1, 10, None},
		{"overflow", 40, inf, Overflow},
		{"underflow zero", -50, 0, Underflow},
		{"underflow subnormal", -40, 1e-40, Underflow},
		{"smallest normal", -37.9, 0x1p-126, None},
		{"inf input", inf, inf, None},
		{"minus inf input", -inf, 0, None},
		{"quiet nan", qnan, qnan, None},
		{"signaling nan", snan, qnan, Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exp10(tt.x, tt.y); got != tt.want {
				t.Errorf("Exp10(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIsSignalingNaN(t *testing.T) {
	tests := []struct {
		bits uint32
		want bool
	}{
		{0x7f800001, true},
		{0xffa00000, true},
		{0x7fc00000, false},
		{0x7f800000, false},
		{0x3f800000, false},
	}
	for _, tt := range tests {
		if got := IsSignalingNaN(math.Float32frombits(tt.bits)); got != tt.want {
			t.Errorf("IsSignalingNaN(%#x) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		e    Exception
		want string
	}{
		{None, "none"},
		{Overflow, "overflow"},
		{Overflow | Underflow, "overflow|underflow"},
		{Invalid | DivByZero, "invalid|divbyzero"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if !(Overflow | Underflow).Has(Underflow) || Overflow.Has(Underflow) {
		t.Error("Has: unexpected result")
	}
}
