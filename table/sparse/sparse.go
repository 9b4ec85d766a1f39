/*
Package sparse implements a simple type for sparse integer matrices.
It is used for parser tables (GOTO-table and ACTION-table), where most of
the cells are empty.

Cells are kept in an ordered map, keyed by their row-major position. Empty
cells are not stored; reading them yields the matrix' null value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// Setting a cell to the null-value removes it.
type IntMatrix struct {
	cells   *treemap.Map
	rowcnt  int
	colcnt  int
	nullval int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	if m < 0 || n < 0 {
		panic(fmt.Sprintf("sparse.NewIntMatrix() with negative dimension %d x %d", m, n))
	}
	return &IntMatrix{
		cells:   treemap.NewWithIntComparator(),
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of non-null values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return m.cells.Size()
}

// InBounds is true if (i,j) denotes a cell of the matrix.
func (m *IntMatrix) InBounds(i, j int) bool {
	return i >= 0 && i < m.rowcnt && j >= 0 && j < m.colcnt
}

// Value returns the value at position (i,j), or NullValue. Positions outside
// of the matrix are empty.
func (m *IntMatrix) Value(i, j int) int32 {
	if !m.InBounds(i, j) {
		return m.nullval
	}
	if v, found := m.cells.Get(m.key(i, j)); found {
		return v.(int32)
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). Set will panic if (i,j) is
// not a position within the matrix.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if !m.InBounds(i, j) {
		panic(fmt.Sprintf("sparse.IntMatrix.Set(%d,%d) outside of %d x %d", i, j, m.rowcnt, m.colcnt))
	}
	if value == m.nullval {
		m.cells.Remove(m.key(i, j))
		return m
	}
	m.cells.Put(m.key(i, j), value)
	return m
}

// Each calls f for every non-null cell, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	it := m.cells.Iterator()
	for it.Next() {
		k := it.Key().(int)
		f(k/m.colcnt, k%m.colcnt, it.Value().(int32))
	}
}

func (m *IntMatrix) key(i, j int) int {
	return i*m.colcnt + j
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("IntMatrix(%d x %d, %d values)", m.rowcnt, m.colcnt, m.ValueCount())
}
