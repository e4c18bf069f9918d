package obj

import "testing"

func TestScanFloats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []float64
	}{
		{"three values", "1.0 2.0 3.0", []float64{1, 2, 3}},
		{"extra spaces", "  1   -2.5\t3e2  ", []float64{1, -2.5, 300}},
		{"slash separated", "1/2/3", []float64{1, 2, 3}},
		{"stops at junk", "1 2 x 3", []float64{1, 2}},
		{"empty", "", nil},
		{"only junk", "abc", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf [4]float64
			got := scanFloats(tc.input, buf[:]).Values()
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d values, got %d (%v)", len(tc.expected), len(got), got)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Errorf("value %d: expected %v, got %v", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestScanFloats_GrowsPastBuffer(t *testing.T) {
	var buf [2]float64
	got := scanFloats("1 2 3 4 5", buf[:])

	if got.Len() != 5 {
		t.Fatalf("expected 5 values, got %d", got.Len())
	}
	if buf[0] != 1 || buf[1] != 2 {
		t.Errorf("expected first values in caller buffer, got %v", buf)
	}
	if last, _ := got.Last(); last != 5 {
		t.Errorf("expected last value 5, got %v", last)
	}
}

func TestScanInts(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"12", []int{12}},
		{"12/7", []int{12, 7}},
		{"12//5", []int{12, 5}},
		{"12/7/5", []int{12, 7, 5}},
		{"1.5", nil},
		{"-3", []int{-3}},
	}

	for _, tc := range tests {
		var buf [3]int
		got := scanInts(tc.input, buf[:]).Values()
		if len(got) != len(tc.expected) {
			t.Errorf("%q: expected %v, got %v", tc.input, tc.expected, got)
			continue
		}
		for i := range tc.expected {
			if got[i] != tc.expected[i] {
				t.Errorf("%q: value %d: expected %d, got %d", tc.input, i, tc.expected[i], got[i])
			}
		}
	}
}
