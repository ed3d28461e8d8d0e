package neurotron

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/htm-community/neurotron/encoders"
	"github.com/skelterjohn/go.matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rep(rows ...[]float64) *matrix.DenseMatrix {
	var flat []float64
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return matrix.MakeDenseMatrix(flat, len(rows), len(rows[0]))
}

func TestFollow(t *testing.T) {
	sequence := []*matrix.DenseMatrix{
		rep([]float64{0, 0, 0}, []float64{0, 0, 0}),
		rep([]float64{1, 1, 1}, []float64{0, 0, 0}),
		rep([]float64{0, 1, 1}, []float64{1, 0, 0}),
		rep([]float64{1, 0, 1}, []float64{0, 1, 0}),
		rep([]float64{0, 0, 1}, []float64{1, 1, 0}),
		rep([]float64{1, 1, 0}, []float64{0, 0, 1}),
		rep([]float64{0, 1, 0}, []float64{1, 0, 1}),
		rep([]float64{1, 0, 0}, []float64{0, 1, 1}),
		rep([]float64{0, 0, 0}, []float64{1, 1, 1}),
	}
	for i := 0; i+1 < len(sequence); i++ {
		assert.Equal(t, Hash(sequence[i+1]), Hash(Follow(sequence[i])))
	}
	assert.Nil(t, Follow(sequence[len(sequence)-1]))
}

func TestFollowThreeRows(t *testing.T) {
	M := rep([]float64{0, 1, 1}, []float64{1, 0, 0}, []float64{0, 0, 0})
	assert.Equal(t, "011|000|100", Hash(Follow(M)))

	M = rep([]float64{0, 0, 1}, []float64{0, 0, 0}, []float64{1, 1, 0})
	assert.Equal(t, "110|001|000", Hash(Follow(M)))

	//3 rows, 2 columns: 9 representations
	count := 0
	for M = Follow(matrix.Zeros(3, 2)); M != nil; M = Follow(M) {
		count++
	}
	assert.Equal(t, 9, count)
}

func TestCode(t *testing.T) {
	assert.Equal(t, []int{1, 0, 0}, Code(rep([]float64{0, 1, 1}, []float64{1, 0, 0})))
	assert.Equal(t, []int{0, 0, 0}, Code(matrix.Zeros(2, 3)))
}

func TestTrainMary(t *testing.T) {
	train := NewTrain(encoders.Mary(), 2, nil)
	ctx, err := train.Step("", "Mary")
	require.NoError(t, err)
	assert.Equal(t, "<Mary>", ctx)

	word, ok := train.Word("Mary")
	require.True(t, ok)
	assert.Equal(t, []int{0, 7, 8}, word.Indices)
	assert.Equal(t, "#0", word.Key)
	assert.Equal(t, "000|000", Hash(word.Rep))

	entry, ok := train.Context("<Mary>")
	require.True(t, ok)
	assert.Equal(t, "Mary", entry.Word)
	assert.Equal(t, "0.0-7.0-8.0", entry.Tag)
	assert.Len(t, entry.Next, 0)
}

func TestTrainMaryLikes(t *testing.T) {
	train := NewTrain(encoders.Mary(), 2, nil)
	_, err := train.Step("", "Mary")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		ctx, err := train.Step("<Mary>", "likes")
		require.NoError(t, err)
		assert.Equal(t, "<Mary likes>", ctx)
	}

	likes, _ := train.Word("likes")
	assert.Equal(t, "#1", likes.Key)
	assert.Equal(t, "111|000", Hash(likes.Rep))

	mary, _ := train.Context("<Mary>")
	assert.Equal(t, &Transition{3, "<Mary likes>", []int{2, 7, 8}}, mary.Next["likes"])

	entry, _ := train.Context("<Mary likes>")
	assert.Equal(t, "#1", entry.Key)
	assert.Equal(t, "2.0-7.0-8.0", entry.Tag)
}

func TestTrainSentences(t *testing.T) {
	train := NewTrain(encoders.Mary(), 2, nil)
	ctx, err := train.Sentence("Mary likes to sing .")
	require.NoError(t, err)
	assert.Equal(t, "<Mary likes to sing .>", ctx)
	assert.Equal(t, []string{"Mary", "likes", "to", "sing", "."}, train.Words())

	ctx, err = train.Sentence("John likes")
	require.NoError(t, err)
	assert.Equal(t, "<John likes>", ctx)

	likes, _ := train.Word("likes")
	assert.Equal(t, "#2", likes.Key)
	assert.Equal(t, "011|100", Hash(likes.Rep))

	entry, _ := train.Context("<John likes>")
	assert.Equal(t, "#2", entry.Key)
	assert.Equal(t, "011|100", Hash(entry.Rep))
	assert.Equal(t, "2.1-7.0-8.0", entry.Tag)

	//context snapshots are not changed by later representations
	old, _ := train.Context("<Mary likes>")
	assert.Equal(t, "111|000", Hash(old.Rep))

	assert.Equal(t, []string{
		"<Mary>", "<Mary likes>", "<Mary likes to>", "<Mary likes to sing>",
		"<Mary likes to sing .>", "<John>", "<John likes>",
	}, train.Contexts())
}

func TestTrainRepeat(t *testing.T) {
	train := NewTrain(encoders.Mary(), 2, nil)
	ctx, err := train.Repeat("Mary likes", 5)
	require.NoError(t, err)
	assert.Equal(t, "<Mary likes>", ctx)

	mary, _ := train.Context("<Mary>")
	assert.Equal(t, 5, mary.Next["likes"].Count)
	likes, _ := train.Word("likes")
	assert.Equal(t, "#1", likes.Key)
}

func TestTrainOverflow(t *testing.T) {
	train := NewTrain(encoders.Mary(), 1, nil)
	_, err := train.Sentence("Mary likes")
	require.NoError(t, err)

	_, err = train.Sentence("John likes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRepresentationOverflow))
}

func TestTrainUnknownWord(t *testing.T) {
	tok := encoders.Mary()
	train := NewTrain(tok, 2, rand.New(rand.NewSource(1)))
	_, err := train.Sentence("Mary swims")
	require.NoError(t, err)

	bits, ok := tok.Pattern("swims")
	require.True(t, ok)
	assert.Equal(t, "swims", tok.Decode(bits))
	word, _ := train.Word("swims")
	assert.Len(t, word.Indices, 3)
}

func TestTrainShow(t *testing.T) {
	train := NewTrain(encoders.Mary(), 2, nil)
	_, err := train.Sentence("Mary likes")
	require.NoError(t, err)

	var buf bytes.Buffer
	train.Show(&buf, false)
	expected := "words:\n" +
		"    Mary: ([0 7 8], '#0', 000|000)\n" +
		"    likes: ([2 7 8], '#1', 111|000)\n" +
		"contexts:\n" +
		"    <Mary>:\n" +
		"       #: ([0 7 8], '#0', 'Mary')\n" +
		"       @: ['#0', 000|000, '0.0-7.0-8.0']\n" +
		"       likes: (1, '<Mary likes>', [2 7 8])\n" +
		"    <Mary likes>:\n" +
		"       #: ([2 7 8], '#1', 'likes')\n" +
		"       @: ['#1', 111|000, '2.0-7.0-8.0']\n"
	assert.Equal(t, expected, buf.String())
}
