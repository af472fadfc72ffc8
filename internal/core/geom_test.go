package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		r             Rect
		right, bottom int
	}{
		{NewRect(5, 10, 20, 15), 25, 25},
		{NewRect(0, 0, 1, 1), 1, 1},
		{NewRect(3, 2, 0, 0), 3, 2},
	}
	for _, tc := range tests {
		if tc.r.Right() != tc.right || tc.r.Bottom() != tc.bottom {
			t.Errorf("%+v: expected right %d bottom %d, got %d %d",
				tc.r, tc.right, tc.bottom, tc.r.Right(), tc.r.Bottom())
		}
	}
}

func TestClampAndAbs(t *testing.T) {
	clamps := []struct {
		v, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tc := range clamps {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}

	for x, expected := range map[int]int{5: 5, -5: 5, 0: 0} {
		if got := Abs(x); got != expected {
			t.Errorf("Abs(%d) = %d, expected %d", x, got, expected)
		}
	}
}
