package encoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	text := NewText("The quick brown fox jumps over the lazy dog", 8)
	assert.Equal(t, "Text(6,8,['The quic','k brown ','fox jump',...])", text.String())
	assert.Equal(t, "fox jump", text.Chunks[2])
	assert.Equal(t, []string{"f", "o", "x", " ", "j", "u", "m", "p"}, text.Chars(2))
	assert.Equal(t, "dog     ", text.Chunks[5])

	m, n := text.Shape()
	assert.Equal(t, 6, m)
	assert.Equal(t, 8, n)
}

func TestTextRefine(t *testing.T) {
	text := NewText("\n  Mary\nlikes", 4)
	assert.Equal(t, []string{"Mary", " lik", "es  "}, text.Chunks)
	assert.Panics(t, func() { NewText("abc", 0) })
}
