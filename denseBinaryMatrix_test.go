package neurotron

import (
	"errors"
	"testing"

	"github.com/htm-community/neurotron/utils"
	"github.com/stretchr/testify/assert"
)

//Tests getting/setting values
func TestDenseGetSet(t *testing.T) {

	sm := NewDenseBinaryMatrix(10, 10)
	sm.Set(2, 4, true)
	sm.Set(6, 5, true)
	sm.Set(7, 5, false)

	if !sm.Get(2, 4) {
		t.Errorf("Was false expected true @ [2,4]")
	}

	if !sm.Get(6, 5) {
		t.Errorf("Was false expected true @ [6,5]")
	}

	if sm.Get(7, 5) {
		t.Errorf("Was true expected false @ [7,5]")
	}

}

func TestDenseOutOfRange(t *testing.T) {
	sm := NewDenseBinaryMatrix(2, 3)

	assert.Panics(t, func() { sm.Get(2, 0) })
	assert.Panics(t, func() { sm.Set(0, 3, true) })
	assert.Panics(t, func() { sm.GetK(6) })
	assert.Panics(t, func() { sm.GetK(-1) })

	defer func() {
		err, ok := recover().(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	}()
	sm.Set(-1, 0, true)
}

func TestDenseKappa(t *testing.T) {
	sm := NewDenseBinaryMatrix(4, 10)

	i, j := sm.Kappa(13)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, j)
	assert.Equal(t, 13, sm.Index(1, 3))

	for k := 0; k < sm.Len(); k++ {
		assert.Equal(t, k, sm.Index(sm.Kappa(k)))
	}
}

func TestDenseLinearOrder(t *testing.T) {
	sm := NewDenseBinaryMatrix(2, 3)
	sm.SetK(1, true)
	sm.SetK(4, true)

	assert.True(t, sm.Get(1, 0))
	assert.True(t, sm.Get(0, 2))
	assert.Equal(t, utils.Make1DBool([]int{0, 1, 0, 0, 1, 0}), sm.Flatten())

	other := NewDenseBinaryMatrix(2, 3)
	other.SetFlat(sm.Flatten())
	assert.True(t, sm.Equals(other))

	assert.Panics(t, func() { other.SetFlat(make([]bool, 5)) })
}

func TestDenseLogic(t *testing.T) {
	a := NewDenseBinaryMatrixFromInts([][]int{{1, 1, 0}, {0, 1, 0}})
	b := NewDenseBinaryMatrixFromInts([][]int{{1, 0, 0}, {0, 1, 1}})

	assert.Equal(t, "100\n010\n", a.And(b).ToString())
	assert.Equal(t, "110\n011\n", a.Or(b).ToString())
	assert.Equal(t, "001\n101\n", a.Not().ToString())
	assert.Equal(t, []bool{true, true, false}, a.ColumnAny())
	assert.Equal(t, 3, a.TotalNonZeroCount())
	assert.Equal(t, []SparseEntry{{0, 0}, {0, 1}, {1, 1}}, a.Entries())

	assert.Panics(t, func() { a.And(NewDenseBinaryMatrix(3, 2)) })
}

func TestDenseRowReplace(t *testing.T) {
	sm := NewDenseBinaryMatrix(10, 10)
	sm.Set(8, 8, true)

	newRow := make([]bool, 10)
	newRow[6] = true
	sm.SetRowFromDense(8, newRow)

	assert.True(t, sm.Get(8, 6))
	assert.False(t, sm.Get(8, 8))
	assert.Equal(t, []int{6}, sm.GetRowIndices(8))
	assert.Equal(t, newRow, sm.GetDenseRow(8))
}

func TestDenseCopyClear(t *testing.T) {
	sm := NewDenseBinaryMatrixFromDense(utils.Make2DBool([][]int{{1, 0}, {0, 1}}))
	cp := sm.Copy()
	sm.Clear()

	assert.Equal(t, 0, sm.TotalNonZeroCount())
	assert.Equal(t, 2, cp.TotalNonZeroCount())
	assert.False(t, sm.Equals(cp))
}
