package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 399.0, 5.5},
		{-5.5, 0.0, 399.0, 0.0},
		{415.5, 0.0, 399.0, 399.0},
		{399.0, 0.0, 399.0, 399.0},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampRejectsEmptyRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"equal bounds", 3, 3},
		{"inverted bounds", 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Clamp(1, %v, %v) should panic", tc.min, tc.max)
				}
			}()
			Clamp(1.0, tc.min, tc.max)
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(-10, -5) != -5 {
		t.Error("Max(-10, -5) should be -5")
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if Sign(-7) != -1 || Sign(7) != 1 || Sign(0) != 0 {
		t.Error("Sign returned wrong value")
	}
}

func TestVec2Truncate(t *testing.T) {
	tests := []struct {
		in       Vec2
		expected Point
	}{
		{V(5.9, 5.1), P(5, 5)},
		{V(0, 0), P(0, 0)},
		{V(-0.5, -3.7), P(0, -3)},
	}

	for _, tc := range tests {
		if got := tc.in.Truncate(); got != tc.expected {
			t.Errorf("%v.Truncate() = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestNewSize(t *testing.T) {
	s := NewSize(400, 200)
	if s.Area() != 80000 {
		t.Errorf("Area() = %d, expected 80000", s.Area())
	}
	if s.Empty() {
		t.Error("400x200 should not be empty")
	}
	if !NewSize(0, 10).Empty() {
		t.Error("0x10 should be empty")
	}

	defer func() {
		if recover() == nil {
			t.Error("NewSize(-1, 1) should panic")
		}
	}()
	NewSize(-1, 1)
}
