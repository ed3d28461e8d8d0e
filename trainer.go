package neurotron

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/htm-community/neurotron/encoders"
	"github.com/htm-community/neurotron/utils"
	"github.com/skelterjohn/go.matrix"
)

/*
Follow returns the successor of a representation matrix with exactly one
set bit per column (or no set bit at all). The matrix is read as an
odometer with one digit per column, least significant column first. An
all zero matrix is followed by the matrix with the first row set, the last
representation is followed by nil.
*/
func Follow(M *matrix.DenseMatrix) *matrix.DenseMatrix {
	m, n := M.Rows(), M.Cols()
	N := M.Copy()

	empty := true
	for i := 0; i < m && empty; i++ {
		for j := 0; j < n; j++ {
			if N.Get(i, j) != 0 {
				empty = false
				break
			}
		}
	}
	if empty {
		for j := 0; j < n; j++ {
			N.Set(0, j, 1)
		}
		return N
	}

	for j := 0; j < n; j++ {
		i := 0
		for i < m && N.Get(i, j) == 0 {
			i++
		}
		if i == m {
			return nil
		}
		N.Set(i, j, 0)
		N.Set((i+1)%m, j, 1)
		if i+1 < m {
			return N
		}
	}
	return nil
}

//Row of the set bit of each column
func Code(M *matrix.DenseMatrix) []int {
	result := make([]int, M.Cols())
	for j := range result {
		for i := 0; i < M.Rows(); i++ {
			if M.Get(i, j) != 0 {
				result[j] = i
				break
			}
		}
	}
	return result
}

//Rows of a 0/1 matrix as "110|001"
func Hash(M *matrix.DenseMatrix) string {
	rows := make([]string, M.Rows())
	for i := range rows {
		for j := 0; j < M.Cols(); j++ {
			if M.Get(i, j) != 0 {
				rows[i] += "1"
			} else {
				rows[i] += "0"
			}
		}
	}
	return strings.Join(rows, "|")
}

//Representation of a word: its token indices, a "#k" key and the k-th
//m x len(indices) representation matrix
type WordEntry struct {
	Indices []int
	Key     string
	Rep     *matrix.DenseMatrix
}

//Transition from one context to the next
type Transition struct {
	Count   int
	Context string
	Indices []int
}

//A context like "<Mary likes>" with the representation of its last word
//and the words seen after it
type ContextEntry struct {
	Word    string
	Indices []int
	Key     string
	Rep     *matrix.DenseMatrix
	//"idx.code" pairs joined by '-'
	Tag string

	Next      map[string]*Transition
	nextOrder []string
}

/*
Train builds the word and context bookkeeping of sequences of words. A
word gets a new representation every time it opens a new context.
*/
type Train struct {
	token *encoders.Token
	m     int
	rnd   *rand.Rand

	words        map[string]*WordEntry
	wordOrder    []string
	contexts     map[string]*ContextEntry
	contextOrder []string
}

//Create trainer for tokens of tok and m cells per column. rnd is used to
//grow the table for unknown words.
func NewTrain(tok *encoders.Token, m int, rnd *rand.Rand) *Train {
	if m <= 0 {
		panic("Cells per column must be positive")
	}
	t := new(Train)
	t.token = tok
	t.m = m
	t.rnd = rnd
	t.words = make(map[string]*WordEntry)
	t.contexts = make(map[string]*ContextEntry)
	return t
}

//Create trainer matching the shape of a cluster
func NewClusterTrain(c *Cluster, tok *encoders.Token) *Train {
	return NewTrain(tok, c.m, c.rnd)
}

func (t *Train) Token() *encoders.Token {
	return t.token
}

//Indices of the on bits of the token of a word
func (t *Train) Index(word string) ([]int, error) {
	bits, err := t.token.Lookup(word, t.rnd)
	if err != nil {
		return nil, err
	}
	return utils.OnIndices(bits), nil
}

func (t *Train) Word(word string) (*WordEntry, bool) {
	entry, ok := t.words[word]
	return entry, ok
}

func (t *Train) Context(ctx string) (*ContextEntry, bool) {
	entry, ok := t.contexts[ctx]
	return entry, ok
}

//Words in order of first appearance
func (t *Train) Words() []string {
	return append([]string(nil), t.wordOrder...)
}

//Contexts in order of creation
func (t *Train) Contexts() []string {
	return append([]string(nil), t.contextOrder...)
}

//Stores a new word with key #0, or moves a known word to its next
//representation
func (t *Train) word(word string) error {
	entry, ok := t.words[word]
	if !ok {
		idx, err := t.Index(word)
		if err != nil {
			return err
		}
		t.words[word] = &WordEntry{idx, "#0", matrix.Zeros(t.m, len(idx))}
		t.wordOrder = append(t.wordOrder, word)
		return nil
	}

	var number int
	fmt.Sscanf(entry.Key, "#%d", &number)
	next := Follow(entry.Rep)
	if next == nil {
		return fmt.Errorf("%w: %q exceeds %v representations", ErrRepresentationOverflow,
			word, math.Pow(float64(t.m), float64(len(entry.Indices))))
	}
	entry.Key = fmt.Sprintf("#%d", number+1)
	entry.Rep = next
	return nil
}

/*
Trains a single step: word follows the context ctx ("" at sentence
start). Returns the new context, e.g. "<Mary likes>" after "<Mary>".
*/
func (t *Train) Step(ctx, word string) (string, error) {
	if _, ok := t.words[word]; !ok {
		if err := t.word(word); err != nil {
			return "", err
		}
	}

	newctx := "<" + word + ">"
	if ctx != "" {
		newctx = "<" + ctx[1:len(ctx)-1] + " " + word + ">"
	}

	idx, err := t.Index(word)
	if err != nil {
		return "", err
	}

	if _, ok := t.contexts[newctx]; !ok {
		if ctx != "" {
			if err := t.word(word); err != nil {
				return "", err
			}
		}
		entry := t.words[word]
		tags := make([]string, len(idx))
		for k, code := range Code(entry.Rep) {
			tags[k] = fmt.Sprintf("%d.%d", idx[k], code)
		}
		t.contexts[newctx] = &ContextEntry{
			Word:    word,
			Indices: idx,
			Key:     entry.Key,
			Rep:     entry.Rep.Copy(),
			Tag:     strings.Join(tags, "-"),
			Next:    make(map[string]*Transition),
		}
		t.contextOrder = append(t.contextOrder, newctx)
	}

	if cur, ok := t.contexts[ctx]; ok {
		tr, ok := cur.Next[word]
		if !ok {
			tr = &Transition{Context: newctx, Indices: idx}
			cur.Next[word] = tr
			cur.nextOrder = append(cur.nextOrder, word)
		}
		tr.Count++
	}
	return newctx, nil
}

//Trains a sequence of words following ctx
func (t *Train) Sequence(ctx string, words []string) (string, error) {
	var err error
	for _, word := range words {
		if ctx, err = t.Step(ctx, word); err != nil {
			return "", err
		}
	}
	return ctx, nil
}

//Trains a blank separated sentence from the start
func (t *Train) Sentence(text string) (string, error) {
	return t.Sequence("", strings.Fields(text))
}

//Trains a sentence n times
func (t *Train) Repeat(text string, n int) (string, error) {
	ctx := ""
	var err error
	for k := 0; k < n; k++ {
		if ctx, err = t.Sentence(text); err != nil {
			return "", err
		}
	}
	return ctx, nil
}

//Writes tokens (optional), words and contexts
func (t *Train) Show(w io.Writer, token bool) {
	if token {
		fmt.Fprintln(w, "token:")
		for _, key := range t.token.Keys() {
			bits, _ := t.token.Pattern(key)
			fmt.Fprintf(w, "    %v %v: %v\n", utils.OnIndices(bits), key, utils.BoolString(bits))
		}
	}
	fmt.Fprintln(w, "words:")
	for _, word := range t.wordOrder {
		e := t.words[word]
		fmt.Fprintf(w, "    %v: (%v, '%v', %v)\n", word, e.Indices, e.Key, Hash(e.Rep))
	}
	fmt.Fprintln(w, "contexts:")
	for _, ctx := range t.contextOrder {
		e := t.contexts[ctx]
		fmt.Fprintf(w, "    %v:\n", ctx)
		fmt.Fprintf(w, "       #: (%v, '%v', '%v')\n", e.Indices, e.Key, e.Word)
		fmt.Fprintf(w, "       @: ['%v', %v, '%v']\n", e.Key, Hash(e.Rep), e.Tag)
		for _, word := range e.nextOrder {
			tr := e.Next[word]
			fmt.Fprintf(w, "       %v: (%v, '%v', %v)\n", word, tr.Count, tr.Context, tr.Indices)
		}
	}
}
