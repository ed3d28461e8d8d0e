package utils

import (
	"bytes"
	"fmt"
)

//Populates integer slice with index values
func FillSliceWithIdxInt(values []int) {
	for i := range values {
		values[i] = i
	}
}

//Populates bool slice with specified value
func FillSliceBool(values []bool, value bool) {
	for i := range values {
		values[i] = value
	}
}

//Returns the subset of values specified by indices
func SubsetSliceBool(values []bool, indices []int) []bool {
	result := make([]bool, len(indices))
	for i, val := range indices {
		result[i] = values[val]
	}
	return result
}

//Searches int slice for specified integer
func ContainsInt(q int, vals []int) bool {
	for _, val := range vals {
		if val == q {
			return true
		}
	}
	return false
}

//Compares 2 int slices element wise
func EqualInt(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//Helper for unit tests where int literals are easier
// to read
func Make2DBool(values [][]int) [][]bool {
	result := make([][]bool, len(values))

	for i, val := range values {
		result[i] = make([]bool, len(val))
		for j, col := range val {
			result[i][j] = col == 1
		}
	}

	return result
}

func Make1DBool(values []int) []bool {
	result := make([]bool, len(values))
	for i, val := range values {
		result[i] = val == 1
	}
	return result
}

//Returns number of on bits
func CountTrue(values []bool) int {
	count := 0
	for _, val := range values {
		if val {
			count++
		}
	}
	return count
}

//Or's 2 bool slices
func OrBool(a, b []bool) []bool {
	checkLen(a, b)
	result := make([]bool, len(a))
	for i, val := range a {
		result[i] = val || b[i]
	}
	return result
}

//And's 2 bool slices
func AndBool(a, b []bool) []bool {
	checkLen(a, b)
	result := make([]bool, len(a))
	for i, val := range a {
		result[i] = val && b[i]
	}
	return result
}

//Negates a bool slice
func NotBool(a []bool) []bool {
	result := make([]bool, len(a))
	for i, val := range a {
		result[i] = !val
	}
	return result
}

func Bool2Int(s []bool) []int {
	result := make([]int, len(s))
	for idx, val := range s {
		if val {
			result[idx] = 1
		}
	}
	return result
}

func Int2Bool(s []int) []bool {
	result := make([]bool, len(s))
	for idx, val := range s {
		result[idx] = val > 0
	}
	return result
}

//Returns "on" indices
func OnIndices(s []bool) []int {
	var result []int
	for idx, val := range s {
		if val {
			result = append(result, idx)
		}
	}
	return result
}

//Concatenates bool slices
func ConcatBool(parts ...[]bool) []bool {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	result := make([]bool, 0, size)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

//Bit string of a bool slice, eg. "1010"
func BoolString(s []bool) string {
	var buffer bytes.Buffer
	for _, val := range s {
		if val {
			buffer.WriteByte('1')
		} else {
			buffer.WriteByte('0')
		}
	}
	return buffer.String()
}

func checkLen(a, b []bool) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("Params have differing lengths %v != %v", len(a), len(b)))
	}
}
