package encoders

import (
	"testing"

	"github.com/htm-community/neurotron/utils"
	"github.com/stretchr/testify/assert"
)

func TestSequenceBits(t *testing.T) {
	seq := BinarySequence(70)
	seq.Set(3, true)
	seq.Set(64, true)
	seq.Set(69, true)
	seq.Set(3, false)

	assert.False(t, seq.At(3))
	assert.True(t, seq.At(64))
	assert.True(t, seq.At(69))
	assert.Equal(t, 2, seq.Count())
	assert.Equal(t, []int{64, 69}, seq.OnIndices())
	assert.Equal(t, 70, seq.Len())

	assert.Panics(t, func() { seq.At(70) })
	assert.Panics(t, func() { seq.Set(-1, true) })
}

func TestSequenceConversions(t *testing.T) {
	seq := FromStr("0110")
	assert.Equal(t, "0110", seq.String())
	assert.Equal(t, utils.Make1DBool([]int{0, 1, 1, 0}), seq.Slice())
	assert.True(t, seq.Equals(FromInts([]int{0, 1, 1, 0})))
	assert.False(t, seq.Equals(FromInts([]int{0, 1, 1, 0, 0})))
	assert.False(t, seq.Equals(FromStr("0111")))
}

func TestSequenceContains(t *testing.T) {
	seq := FromStr("1101")
	assert.True(t, seq.Contains(FromStr("0101")))
	assert.True(t, seq.Contains(FromStr("0000")))
	assert.False(t, seq.Contains(FromStr("0011")))
	assert.False(t, seq.Contains(FromStr("110")))
}
