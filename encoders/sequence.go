package encoders

import (
	"github.com/htm-community/neurotron/utils"
)

//Fixed length bit sequence packed into 64 bit words
type Sequence struct {
	data         []uint64
	binaryLength int
}

/* Intializers */

func BinarySequence(length int) *Sequence {
	seq := new(Sequence)
	seq.init(length)
	return seq
}

func FromBools(bits []bool) *Sequence {
	seq := new(Sequence)
	seq.init(len(bits))
	for idx, val := range bits {
		if val {
			seq.Set(idx, true)
		}
	}
	return seq
}

func FromInts(ints []int) *Sequence {
	return FromBools(utils.Int2Bool(ints))
}

//Parses a "0101" string, every character other than '0' is an on bit
func FromStr(str string) *Sequence {
	seq := new(Sequence)
	seq.init(len(str))
	for idx, val := range str {
		if val != '0' {
			seq.Set(idx, true)
		}
	}
	return seq
}

/* *************************************/

/* helpers */

func (s *Sequence) init(size int) {
	if size < 0 {
		panic("Sequence length cannot be negative")
	}
	s.data = make([]uint64, s.idx(size)+1)
	s.binaryLength = size
}

func (s *Sequence) idx(i int) int {
	return i / 64
}

func (s *Sequence) check(idx int) {
	if idx < 0 || idx >= s.binaryLength {
		panic("Sequence index out of range")
	}
}

/* exported functions */

func (s *Sequence) Equals(other *Sequence) bool {
	if s.Len() != other.Len() {
		return false
	}

	for idx, val := range s.data {
		if val != other.data[idx] {
			return false
		}
	}

	return true
}

func (s *Sequence) At(idx int) bool {
	s.check(idx)
	bitPos := uint(idx % 64)
	return s.data[s.idx(idx)]&(1<<bitPos) != 0
}

func (s *Sequence) Set(idx int, val bool) {
	s.check(idx)
	bitPos := uint(idx % 64)
	if val {
		s.data[s.idx(idx)] |= 1 << bitPos
	} else {
		s.data[s.idx(idx)] &^= 1 << bitPos
	}
}

func (s *Sequence) Len() int {
	return s.binaryLength
}

//Number of on bits
func (s *Sequence) Count() int {
	count := 0
	for _, word := range s.data {
		for ; word != 0; word &= word - 1 {
			count++
		}
	}
	return count
}

func (s *Sequence) OnIndices() []int {
	return utils.OnIndices(s.Slice())
}

//True if every on bit of other is also on in s
func (s *Sequence) Contains(other *Sequence) bool {
	if s.Len() != other.Len() {
		return false
	}
	for idx, val := range other.data {
		if val&^s.data[idx] != 0 {
			return false
		}
	}
	return true
}

//Bits as "0101" string
func (s *Sequence) String() string {
	return utils.BoolString(s.Slice())
}

func (s *Sequence) Slice() []bool {
	result := make([]bool, s.binaryLength)
	for idx := range result {
		result[idx] = s.At(idx)
	}
	return result
}
