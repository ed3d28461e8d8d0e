package neurotron

import (
	"sort"
)

//Items are index of non-zero columns
type SparseRow []int

//Sparse binary matrix stores indexes of non-zero entries in matrix
//to conserve space. Rows is map of non-zero rows indexed by row index.
//The matrix grows downwards with AppendRow.
type SparseBinaryMatrix struct {
	Width  int
	Height int
	Rows   map[int]SparseRow
}

func NewSparseBinaryMatrix(height, width int) *SparseBinaryMatrix {
	if height < 0 || width < 0 {
		fail(ErrShapeMismatch, "invalid sparse matrix shape %vx%v", height, width)
	}
	m := new(SparseBinaryMatrix)
	m.Height = height
	m.Width = width
	m.Rows = make(map[int]SparseRow)
	return m
}

func (sm *SparseBinaryMatrix) validate(row, col int) {
	if row < 0 || row >= sm.Height || col < 0 || col >= sm.Width {
		fail(ErrIndexOutOfRange, "[%v,%v] outside %vx%v matrix", row, col, sm.Height, sm.Width)
	}
}

//Get value at row,col position
func (sm *SparseBinaryMatrix) Get(row, col int) bool {
	sm.validate(row, col)
	for _, x := range sm.Rows[row] {
		if x == col {
			return true
		}
	}
	return false
}

func (sm *SparseBinaryMatrix) delete(row, col int) {
	r, ok := sm.Rows[row]
	if !ok {
		return
	}
	for x := 0; x < len(r); x++ {
		if r[x] == col {
			sm.Rows[row] = append(r[:x], r[x+1:]...)
			break
		}
	}
	if len(sm.Rows[row]) < 1 {
		//delete row entry
		delete(sm.Rows, row)
	}
}

//Set value at row,col position
func (sm *SparseBinaryMatrix) Set(row, col int, value bool) {
	sm.validate(row, col)
	if !value {
		sm.delete(row, col)
		return
	}
	if sm.Get(row, col) {
		return
	}
	r := append(sm.Rows[row], col)
	sort.Ints(r)
	sm.Rows[row] = r
}

//Replaces a row with the non-zero entries of a dense row
func (sm *SparseBinaryMatrix) ReplaceRow(row int, values []bool) {
	if len(values) != sm.Width {
		fail(ErrShapeMismatch, "row of length %v, matrix width %v", len(values), sm.Width)
	}
	sm.validate(row, 0)
	delete(sm.Rows, row)
	for col, val := range values {
		if val {
			sm.Rows[row] = append(sm.Rows[row], col)
		}
	}
}

//Appends a dense row at the bottom
func (sm *SparseBinaryMatrix) AppendRow(values []bool) {
	sm.Height++
	sm.ReplaceRow(sm.Height-1, values)
}

//Returns dense column, used to read the history of one cell
func (sm *SparseBinaryMatrix) GetDenseCol(col int) []bool {
	result := make([]bool, sm.Height)
	for row := range result {
		result[row] = sm.Get(row, col)
	}
	return result
}

//Returns dense row
func (sm *SparseBinaryMatrix) GetDenseRow(row int) []bool {
	sm.validate(row, 0)
	result := make([]bool, sm.Width)
	for _, col := range sm.Rows[row] {
		result[col] = true
	}
	return result
}

func (sm *SparseBinaryMatrix) TotalNonZeroCount() int {
	count := 0
	for _, r := range sm.Rows {
		count += len(r)
	}
	return count
}

//Drops all rows
func (sm *SparseBinaryMatrix) Clear() {
	sm.Height = 0
	sm.Rows = make(map[int]SparseRow)
}
