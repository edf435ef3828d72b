package component

import "testing"

func TestBandBounds(t *testing.T) {
	b := Band{Top: -40, Height: 60, X: 30, Width: 120}
	bb := b.Bounds()
	if bb.L != 30 || bb.R != 150 || bb.B != -40 || bb.T != 20 {
		t.Fatalf("bounds = %+v", bb)
	}

	inner := Band{Top: -30, Height: 10, X: 40, Width: 10}
	if !bb.Contains(inner.Bounds()) {
		t.Fatalf("inner band should be contained")
	}
	outside := Band{Top: 30, Height: 10, X: 40, Width: 10}
	if bb.Intersects(outside.Bounds()) {
		t.Fatalf("band below should not intersect")
	}
}
