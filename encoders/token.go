package encoders

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cznic/mathutil"
	"github.com/htm-community/neurotron/utils"
)

var (
	ErrTokenizerEmpty        = errors.New("cannot upgrade empty tokenizer")
	ErrPatternSpaceExhausted = errors.New("pattern space exhausted")
	ErrWidthMismatch         = errors.New("token width mismatch")
)

//Random trials of Upgrade before giving up
const MaxUpgradeTrials = 100000

/*
Token is an ordered table mapping words to fixed width bit patterns. The
decoder maps the "0101" string of each pattern back to its word.
*/
type Token struct {
	keys     []string
	patterns map[string]*Sequence
	decoder  map[string]string
	width    int
}

//Create empty token table
func NewToken() *Token {
	t := new(Token)
	t.patterns = make(map[string]*Sequence)
	t.decoder = make(map[string]string)
	return t
}

//Create token table from int patterns, keys in the given order
func NewTokenFromInts(keys []string, patterns [][]int) (*Token, error) {
	if len(keys) != len(patterns) {
		return nil, fmt.Errorf("%v keys but %v patterns", len(keys), len(patterns))
	}
	t := NewToken()
	for i, key := range keys {
		if err := t.Add(key, utils.Make1DBool(patterns[i])); err != nil {
			return nil, err
		}
	}
	return t, nil
}

//Default table holding '.' as n-m zeros followed by m ones
func Create(m, n int) *Token {
	if m < 0 || m > n {
		panic("Create requires 0 <= m <= n")
	}
	bits := make([]bool, n)
	for i := n - m; i < n; i++ {
		bits[i] = true
	}
	t := NewToken()
	t.Add(".", bits)
	return t
}

//Adds or replaces a word. All patterns of a table share one width.
func (t *Token) Add(key string, bits []bool) error {
	if len(t.keys) > 0 && len(bits) != t.width {
		return fmt.Errorf("%w: pattern of %q has %v bits, table width %v", ErrWidthMismatch, key, len(bits), t.width)
	}
	if old, ok := t.patterns[key]; ok {
		if t.decoder[old.String()] == key {
			delete(t.decoder, old.String())
		}
	} else {
		t.keys = append(t.keys, key)
	}
	seq := FromBools(bits)
	t.patterns[key] = seq
	t.decoder[seq.String()] = key
	t.width = len(bits)
	return nil
}

//Words in insertion order
func (t *Token) Keys() []string {
	result := make([]string, len(t.keys))
	copy(result, t.keys)
	return result
}

func (t *Token) Len() int {
	return len(t.keys)
}

//Pattern of a word, false if the word is unknown
func (t *Token) Pattern(key string) ([]bool, bool) {
	seq, ok := t.patterns[key]
	if !ok {
		return nil, false
	}
	return seq.Slice(), true
}

//Returns (number of words, pattern width)
func (t *Token) Shape() (count, width int) {
	return len(t.keys), t.width
}

//Returns the minimum and maximum number of on bits over all patterns
func (t *Token) Range() (low, high int) {
	if len(t.keys) == 0 {
		return 0, 0
	}
	low, high = t.width, 0
	for _, key := range t.keys {
		n := t.patterns[key].Count()
		low = mathutil.Min(low, n)
		high = mathutil.Max(high, n)
	}
	return low, high
}

//Returns the word with exactly this pattern, "" if there is none
func (t *Token) Decode(bits []bool) string {
	return t.decoder[utils.BoolString(bits)]
}

//Returns all words whose non empty pattern is contained in bits
func (t *Token) DecodeMulti(bits []bool) []string {
	if len(bits) != t.width {
		return nil
	}
	seq := FromBools(bits)
	var result []string
	for _, key := range t.keys {
		pattern := t.patterns[key]
		if pattern.Count() > 0 && seq.Contains(pattern) {
			result = append(result, key)
		}
	}
	return result
}

/*
Assigns a new random pattern to word. The number of on bits is drawn from
the range of the table and the pattern must not be used by another word.
Gives up with ErrPatternSpaceExhausted after MaxUpgradeTrials draws.
*/
func (t *Token) Upgrade(word string, rnd *rand.Rand) ([]bool, error) {
	if len(t.keys) == 0 {
		return nil, ErrTokenizerEmpty
	}
	low, high := t.Range()

	for trial := 0; trial < MaxUpgradeTrials; trial++ {
		m := low + rnd.Intn(1+high-low)
		pattern := make([]bool, t.width)
		for count := 0; count < m; {
			idx := rnd.Intn(t.width)
			if !pattern[idx] {
				pattern[idx] = true
				count++
			}
		}
		if _, used := t.decoder[utils.BoolString(pattern)]; used {
			continue
		}
		if err := t.Add(word, pattern); err != nil {
			return nil, err
		}
		return pattern, nil
	}
	return nil, fmt.Errorf("%w: gave up on %q after %v trials", ErrPatternSpaceExhausted, word, MaxUpgradeTrials)
}

//Returns the pattern of a word, upgrading the table for unknown words
func (t *Token) Lookup(word string, rnd *rand.Rand) ([]bool, error) {
	if bits, ok := t.Pattern(word); ok {
		return bits, nil
	}
	return t.Upgrade(word, rnd)
}

/* ValueEncoder */

func (t *Token) GetWidth() int {
	return t.width
}

func (t *Token) IsDelta() bool {
	return false
}

//Encodes a word, unknown words and non string input encode to all zeros
func (t *Token) EncodeIntoArray(input interface{}) []bool {
	result := make([]bool, t.width)
	if word, ok := input.(string); ok {
		if bits, ok := t.Pattern(word); ok {
			copy(result, bits)
		}
	}
	return result
}

func (t *Token) GetName() string {
	return "token"
}

func (t *Token) GetDescription() string {
	count, width := t.Shape()
	return fmt.Sprintf("token table of %v words, %v bits", count, width)
}
