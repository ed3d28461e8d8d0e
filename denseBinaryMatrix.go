package neurotron

import (
	"bytes"
)

//Row/col position of an on entry
type SparseEntry struct {
	Row int
	Col int
}

//Dense binary matrix holding one bit per cell. Entries are stored row
//major, linear cell indices run column major (k = row + col*Height) so
//that the rows of one column are contiguous in k.
type DenseBinaryMatrix struct {
	Width   int
	Height  int
	entries []bool
}

//Create new dense binary matrix of specified size
func NewDenseBinaryMatrix(height, width int) *DenseBinaryMatrix {
	m := &DenseBinaryMatrix{}
	m.Height = height
	m.Width = width
	m.entries = make([]bool, width*height)
	return m
}

//Create dense binary matrix from specified dense matrix
func NewDenseBinaryMatrixFromDense(values [][]bool) *DenseBinaryMatrix {
	if len(values) < 1 {
		panic("No values specified.")
	}

	m := NewDenseBinaryMatrix(len(values), len(values[0]))
	for r := 0; r < m.Height; r++ {
		m.SetRowFromDense(r, values[r])
	}
	return m
}

// Creates a dense binary matrix from specified integer array
// (any values greater than 0 are true)
func NewDenseBinaryMatrixFromInts(values [][]int) *DenseBinaryMatrix {
	if len(values) < 1 {
		panic("No values specified.")
	}

	m := NewDenseBinaryMatrix(len(values), len(values[0]))

	for r := 0; r < m.Height; r++ {
		if len(values[r]) != m.Width {
			fail(ErrShapeMismatch, "row %v has %v columns, expected %v", r, len(values[r]), m.Width)
		}
		for c := 0; c < m.Width; c++ {
			if values[r][c] > 0 {
				m.Set(r, c, true)
			}
		}
	}

	return m
}

//Converts linear cell index to row/col
func (sm *DenseBinaryMatrix) Kappa(k int) (row int, col int) {
	if k < 0 || k >= sm.Len() {
		fail(ErrIndexOutOfRange, "cell index %v not in [0,%v)", k, sm.Len())
	}
	return k % sm.Height, k / sm.Height
}

//Converts row/col to linear cell index
func (sm *DenseBinaryMatrix) Index(row, col int) int {
	sm.validate(row, col)
	return row + col*sm.Height
}

//Number of cells
func (sm *DenseBinaryMatrix) Len() int {
	return sm.Height * sm.Width
}

//Get value at row,col position
func (sm *DenseBinaryMatrix) Get(row int, col int) bool {
	sm.validate(row, col)
	return sm.entries[row*sm.Width+col]
}

//Set value at row,col position
func (sm *DenseBinaryMatrix) Set(row int, col int, value bool) {
	sm.validate(row, col)
	sm.entries[row*sm.Width+col] = value
}

//Get value of linear cell index k
func (sm *DenseBinaryMatrix) GetK(k int) bool {
	return sm.Get(sm.Kappa(k))
}

//Set value of linear cell index k
func (sm *DenseBinaryMatrix) SetK(k int, value bool) {
	row, col := sm.Kappa(k)
	sm.Set(row, col, value)
}

//Returns all true/on entries
func (sm *DenseBinaryMatrix) Entries() []SparseEntry {
	var result []SparseEntry
	for idx, val := range sm.entries {
		if val {
			result = append(result, SparseEntry{idx / sm.Width, idx % sm.Width})
		}
	}
	return result
}

//Returns flattened representation in linear cell index order
func (sm *DenseBinaryMatrix) Flatten() []bool {
	result := make([]bool, sm.Len())
	for k := range result {
		result[k] = sm.GetK(k)
	}
	return result
}

//Sets all entries from a slice in linear cell index order
func (sm *DenseBinaryMatrix) SetFlat(values []bool) {
	if len(values) != sm.Len() {
		fail(ErrShapeMismatch, "flat vector of length %v, expected %v", len(values), sm.Len())
	}
	for k, val := range values {
		sm.SetK(k, val)
	}
}

//Returns dense row
func (sm *DenseBinaryMatrix) GetDenseRow(row int) []bool {
	sm.validate(row, 0)
	result := make([]bool, sm.Width)
	copy(result, sm.entries[row*sm.Width:(row+1)*sm.Width])
	return result
}

//Returns a rows "on" indices
func (sm *DenseBinaryMatrix) GetRowIndices(row int) []int {
	sm.validate(row, 0)
	result := make([]int, 0, sm.Width)
	start := row * sm.Width
	for i := 0; i < sm.Width; i++ {
		if sm.entries[start+i] {
			result = append(result, i)
		}
	}
	return result
}

//Sets a row from dense representation
func (sm *DenseBinaryMatrix) SetRowFromDense(row int, denseRow []bool) {
	if len(denseRow) != sm.Width {
		fail(ErrShapeMismatch, "row of length %v, expected %v", len(denseRow), sm.Width)
	}
	for i := 0; i < sm.Width; i++ {
		sm.Set(row, i, denseRow[i])
	}
}

//Column wise OR, true for every column with at least one on cell
func (sm *DenseBinaryMatrix) ColumnAny() []bool {
	result := make([]bool, sm.Width)
	for idx, val := range sm.entries {
		if val {
			result[idx%sm.Width] = true
		}
	}
	return result
}

//Returns total true entries
func (sm *DenseBinaryMatrix) TotalNonZeroCount() int {
	count := 0
	for _, val := range sm.entries {
		if val {
			count++
		}
	}
	return count
}

// Ands 2 matrices
func (sm *DenseBinaryMatrix) And(sm2 *DenseBinaryMatrix) *DenseBinaryMatrix {
	sm.validateShape(sm2)
	result := NewDenseBinaryMatrix(sm.Height, sm.Width)
	for idx, val := range sm.entries {
		result.entries[idx] = val && sm2.entries[idx]
	}
	return result
}

// Ors 2 matrices
func (sm *DenseBinaryMatrix) Or(sm2 *DenseBinaryMatrix) *DenseBinaryMatrix {
	sm.validateShape(sm2)
	result := NewDenseBinaryMatrix(sm.Height, sm.Width)
	for idx, val := range sm.entries {
		result.entries[idx] = val || sm2.entries[idx]
	}
	return result
}

//Negates all entries
func (sm *DenseBinaryMatrix) Not() *DenseBinaryMatrix {
	result := NewDenseBinaryMatrix(sm.Height, sm.Width)
	for idx, val := range sm.entries {
		result.entries[idx] = !val
	}
	return result
}

func (sm *DenseBinaryMatrix) Equals(sm2 *DenseBinaryMatrix) bool {
	if sm.Height != sm2.Height || sm.Width != sm2.Width {
		return false
	}
	for idx, val := range sm.entries {
		if val != sm2.entries[idx] {
			return false
		}
	}
	return true
}

//Clears all entries
func (sm *DenseBinaryMatrix) Clear() {
	for idx := range sm.entries {
		sm.entries[idx] = false
	}
}

//Copys a matrix
func (sm *DenseBinaryMatrix) Copy() *DenseBinaryMatrix {
	if sm == nil {
		return nil
	}

	result := NewDenseBinaryMatrix(sm.Height, sm.Width)
	copy(result.entries, sm.entries)
	return result
}

func (sm *DenseBinaryMatrix) ToString() string {
	var buffer bytes.Buffer

	for r := 0; r < sm.Height; r++ {
		for c := 0; c < sm.Width; c++ {
			if sm.Get(r, c) {
				buffer.WriteByte('1')
			} else {
				buffer.WriteByte('0')
			}
		}
		buffer.WriteByte('\n')
	}

	return buffer.String()
}

func (sm *DenseBinaryMatrix) validate(row, col int) {
	if row < 0 || row >= sm.Height || col < 0 || col >= sm.Width {
		fail(ErrIndexOutOfRange, "[%v,%v] outside %vx%v matrix", row, col, sm.Height, sm.Width)
	}
}

func (sm *DenseBinaryMatrix) validateShape(sm2 *DenseBinaryMatrix) {
	if sm.Height != sm2.Height || sm.Width != sm2.Width {
		fail(ErrShapeMismatch, "%vx%v vs %vx%v", sm.Height, sm.Width, sm2.Height, sm2.Width)
	}
}
