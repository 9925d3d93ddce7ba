package wumpus

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in     string
		want   Direction
		wantOK bool
	}{
		{"up", DirUp, true},
		{"Down", DirDown, true},
		{" LEFT ", DirLeft, true},
		{"right", DirRight, true},
		{"north", DirUp, false},
		{"", DirUp, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDirection(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDirection(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDirectionDeltaIsYUp(t *testing.T) {
	start := C(2, 2)
	want := map[Direction]Coord{
		DirUp:    C(2, 3),
		DirDown:  C(2, 1),
		DirLeft:  C(1, 2),
		DirRight: C(3, 2),
	}

	for _, d := range Directions() {
		if got := start.Step(d); got != want[d] {
			t.Errorf("Step(%v) = %v, want %v", d, got, want[d])
		}
	}
}

func TestDirectionArrowsDistinct(t *testing.T) {
	seen := make(map[rune]Direction)
	for _, d := range Directions() {
		r := d.Arrow()
		if prev, ok := seen[r]; ok {
			t.Errorf("%v and %v share arrow %q", prev, d, r)
		}
		seen[r] = d
	}
}
