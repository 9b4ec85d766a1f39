package sparse

import "testing"

func TestNullValue(t *testing.T) {
	M := NewIntMatrix(3, 4, -1)
	if v := M.Value(1, 2); v != -1 {
		t.Errorf("expected empty cell to hold null value -1, is %d", v)
	}
	if v := M.Value(7, 7); v != -1 {
		t.Errorf("expected out of bounds cell to hold null value -1, is %d", v)
	}
	if M.ValueCount() != 0 {
		t.Errorf("expected empty matrix, has %d values", M.ValueCount())
	}
}

func TestSetValue(t *testing.T) {
	M := NewIntMatrix(3, 4, DefaultNullValue)
	M.Set(2, 3, 4711).Set(0, 0, 1).Set(1, 2, 7)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	M.Set(2, 3, 12)
	if v := M.Value(2, 3); v != 12 {
		t.Errorf("expected M(2,3) to be overwritten with 12, is %d", v)
	}
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	M.Set(0, 0, DefaultNullValue)
	if M.ValueCount() != 2 {
		t.Errorf("expected null value to clear a cell, have %d values", M.ValueCount())
	}
}

func TestEachRowMajor(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 0, 3).Set(0, 2, 1).Set(1, 1, 2)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		if M.Value(i, j) != v {
			t.Errorf("Each reports (%d,%d)=%d, matrix holds %d", i, j, v, M.Value(i, j))
		}
		seen = append(seen, v)
	})
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Errorf("expected cells in row-major order [1 2 3], got %v", seen)
	}
}

func TestSetOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
