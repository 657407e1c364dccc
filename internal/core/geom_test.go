package core

import "testing"

func TestVec2Add(t *testing.T) {
	got := Vec2{X: 3, Y: -2}.Add(Vec2{X: 1, Y: 5})
	if got != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add = %+v, expected {4 3}", got)
	}
}

func TestVec2Opposite(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"up vs down", DirUp, DirDown, true},
		{"left vs right", DirLeft, DirRight, true},
		{"up vs left", DirUp, DirLeft, false},
		{"same direction", DirRight, DirRight, false},
		{"zero vs zero", Vec2{}, Vec2{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Opposite(tc.b); got != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Opposite(tc.a); got != tc.expected {
				t.Errorf("Opposite() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2String(t *testing.T) {
	if DirUp.String() != "up" || DirDown.String() != "down" ||
		DirLeft.String() != "left" || DirRight.String() != "right" {
		t.Error("heading names wrong")
	}
	if (Vec2{X: 3, Y: 3}).String() != "none" {
		t.Error("non-heading vectors should stringify as none")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs broken")
	}
}
