package langton

import "testing"

func TestRotationCycles(t *testing.T) {
	for _, d := range Directions {
		n, p := d, d
		for i := 0; i < 4; i++ {
			n = n.Next()
			p = p.Prev()
		}
		if n != d {
			t.Errorf("four Next() from %v ended at %v", d, n)
		}
		if p != d {
			t.Errorf("four Prev() from %v ended at %v", d, p)
		}
		if got := d.Next().Prev(); got != d {
			t.Errorf("%v.Next().Prev() = %v", d, got)
		}
		if got := d.Prev().Next(); got != d {
			t.Errorf("%v.Prev().Next() = %v", d, got)
		}
	}
}

func TestClockwiseOrder(t *testing.T) {
	want := map[Direction]Direction{Up: Right, Right: Down, Down: Left, Left: Up}
	for from, to := range want {
		if got := from.Next(); got != to {
			t.Errorf("%v.Next() = %v, want %v", from, got, to)
		}
	}
	if Direction(4).Valid() {
		t.Error("direction 4 should be invalid")
	}
}
