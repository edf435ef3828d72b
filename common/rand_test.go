package common

import "testing"

func TestCoinBoundary(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want bool
	}{
		{"zero", 0, true},
		{"half_is_lower", 0.5, true},
		{"above_half", 0.5000001, false},
		{"near_one", 0.999, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := &Sequence{Values: []float64{c.v}}
			if got := Coin(src); got != c.want {
				t.Fatalf("Coin(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestNewSourceRange(t *testing.T) {
	src := NewSource(42)
	sawLow, sawHigh := false, false
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("value %v outside [0,1)", v)
		}
		if Coin(&Sequence{Values: []float64{v}}) {
			sawLow = true
		} else {
			sawHigh = true
		}
	}
	if !sawLow || !sawHigh {
		t.Fatalf("expected both branches over many draws, low=%v high=%v", sawLow, sawHigh)
	}
}

func TestPickStaysInRange(t *testing.T) {
	src := &Sequence{Values: []float64{0, 0.5, 0.9999999}}
	for i := 0; i < 3; i++ {
		if got := Pick(src, 9); got < 0 || got >= 9 {
			t.Fatalf("Pick out of range: %d", got)
		}
	}
	if got := Pick(src, 0); got != 0 {
		t.Fatalf("Pick with n=0 should be 0, got %d", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 26, 394); got != 26 {
		t.Fatalf("low clamp = %v", got)
	}
	if got := Clamp(500, 26, 394); got != 394 {
		t.Fatalf("high clamp = %v", got)
	}
	if got := Clamp(100, 26, 394); got != 100 {
		t.Fatalf("in range = %v", got)
	}
}
