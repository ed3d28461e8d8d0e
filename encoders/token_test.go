package encoders

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/htm-community/neurotron/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	tok := Create(2, 4)
	assert.Equal(t, []string{"."}, tok.Keys())
	bits, ok := tok.Pattern(".")
	require.True(t, ok)
	assert.Equal(t, utils.Make1DBool([]int{0, 0, 1, 1}), bits)

	low, high := tok.Range()
	assert.Equal(t, 2, low)
	assert.Equal(t, 2, high)
	count, width := tok.Shape()
	assert.Equal(t, 1, count)
	assert.Equal(t, 4, width)

	bits, err := tok.Lookup("new", rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	assert.Equal(t, 2, utils.CountTrue(bits))
	assert.NotEqual(t, "0011", utils.BoolString(bits))
	count, _ = tok.Shape()
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{".", "new"}, tok.Keys())

	//known words are not upgraded again
	again, err := tok.Lookup("new", nil)
	require.NoError(t, err)
	assert.Equal(t, bits, again)
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, tok := range []*Token{Mary(), Sarah()} {
		for _, key := range tok.Keys() {
			bits, _ := tok.Pattern(key)
			if key == "climb" {
				//shares the pattern of dance, the later word wins
				continue
			}
			if key == "dance" {
				assert.Equal(t, "climb", tok.Decode(bits))
				continue
			}
			assert.Equal(t, key, tok.Decode(bits))
		}
	}

	mary := Mary()
	assert.Equal(t, "", mary.Decode(make([]bool, 9)))
	assert.Equal(t, "", mary.Decode(utils.Make1DBool([]int{1, 1, 1, 1, 1, 1, 1, 1, 1})))
	assert.Equal(t, "", mary.Decode(make([]bool, 3)))

	//Sarah registers the zero pattern as '.'
	assert.Equal(t, ".", Sarah().Decode(make([]bool, 10)))
}

func TestDecodeMulti(t *testing.T) {
	tok, err := NewTokenFromInts([]string{"word1", "word2"}, [][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	assert.Equal(t, "word1", tok.Decode(utils.Make1DBool([]int{0, 1, 0})))
	assert.Equal(t, "", tok.Decode(utils.Make1DBool([]int{1, 1, 1})))
	assert.Equal(t, []string{"word1", "word2"}, tok.DecodeMulti(utils.Make1DBool([]int{1, 1, 1})))
	assert.Equal(t, []string{"word2"}, tok.DecodeMulti(utils.Make1DBool([]int{1, 0, 1})))
	assert.Nil(t, tok.DecodeMulti(utils.Make1DBool([]int{0, 0, 0})))
	assert.Nil(t, tok.DecodeMulti(utils.Make1DBool([]int{1, 1})))
}

func TestUpgrade(t *testing.T) {
	tok, err := NewTokenFromInts([]string{"word1", "word2"}, [][]int{{0, 1, 0, 1}, {1, 0, 1, 0}})
	require.NoError(t, err)

	bits, err := tok.Upgrade("word3", rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	assert.Equal(t, 2, utils.CountTrue(bits))
	assert.Equal(t, "word3", tok.Decode(bits))
	count, width := tok.Shape()
	assert.Equal(t, 3, count)
	assert.Equal(t, 4, width)
}

func TestUpgradeEmpty(t *testing.T) {
	_, err := NewToken().Upgrade("word", rand.New(rand.NewSource(0)))
	assert.True(t, errors.Is(err, ErrTokenizerEmpty))
}

func TestUpgradeExhausted(t *testing.T) {
	tok, err := NewTokenFromInts([]string{"a", "b"}, [][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)

	_, err = tok.Upgrade("c", rand.New(rand.NewSource(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPatternSpaceExhausted))
	count, _ := tok.Shape()
	assert.Equal(t, 2, count)
}

func TestAdd(t *testing.T) {
	tok := NewToken()
	require.NoError(t, tok.Add("a", utils.Make1DBool([]int{1, 0, 0})))

	err := tok.Add("b", utils.Make1DBool([]int{1, 0}))
	assert.True(t, errors.Is(err, ErrWidthMismatch))

	//replacing a word drops its old pattern
	require.NoError(t, tok.Add("a", utils.Make1DBool([]int{0, 1, 0})))
	assert.Equal(t, "", tok.Decode(utils.Make1DBool([]int{1, 0, 0})))
	assert.Equal(t, "a", tok.Decode(utils.Make1DBool([]int{0, 1, 0})))
	assert.Equal(t, 1, tok.Len())

	_, err = NewTokenFromInts([]string{"a"}, nil)
	assert.Error(t, err)
}

func TestTokenEncoder(t *testing.T) {
	var enc ValueEncoder = Mary()
	assert.Equal(t, 9, enc.GetWidth())
	assert.False(t, enc.IsDelta())
	assert.Equal(t, utils.Make1DBool([]int{0, 0, 1, 0, 0, 0, 0, 1, 1}), enc.EncodeIntoArray("likes"))
	assert.Equal(t, make([]bool, 9), enc.EncodeIntoArray("unknown"))
	assert.Equal(t, make([]bool, 9), enc.EncodeIntoArray(42))
	assert.Equal(t, "token table of 12 words, 9 bits", enc.GetDescription())

	multi := &Encoder{Encoders: []ValueEncoder{Mary(), Sarah()}}
	assert.Equal(t, 19, multi.Width())
	out := multi.Encode("Mary", "music")
	assert.Len(t, out, 19)
	assert.Equal(t, []int{0, 7, 8, 9, 10, 11, 14, 16, 17, 18}, utils.OnIndices(out))
	assert.Panics(t, func() { multi.Encode("Mary") })
}
