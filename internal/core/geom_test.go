package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{5, 10, 10},
		{10, 5, 10},
		{-3, 0, 0},
		{7, 7, 7},
	}

	for _, tc := range tests {
		if got := Max(tc.a, tc.b); got != tc.want {
			t.Errorf("Max(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestActionIsDirectional(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirectional() {
			t.Errorf("%s should be directional", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionShoot, ActionRestart, ActionQuit} {
		if a.IsDirectional() {
			t.Errorf("%s should not be directional", a)
		}
	}
}
