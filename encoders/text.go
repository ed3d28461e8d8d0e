package encoders

import (
	"fmt"
	"strings"
)

//Text split into chunks of equal length
type Text struct {
	Chunks []string
	N      int
}

/*
Splits text into chunks of n characters. Leading blanks and newlines are
dropped, remaining newlines become blanks and the last chunk is padded
with blanks.
*/
func NewText(text string, n int) *Text {
	if n <= 0 {
		panic("Chunk length must be positive")
	}
	text = strings.TrimLeft(text, " \n")
	text = strings.Replace(text, "\n", " ", -1)

	t := &Text{N: n}
	runes := []rune(text)
	for k := 0; k <= len(runes)/n; k++ {
		end := k*n + n
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[k*n : end])
		chunk += strings.Repeat(" ", n-(end-k*n))
		t.Chunks = append(t.Chunks, chunk)
	}
	return t
}

//Returns (number of chunks, chunk length)
func (t *Text) Shape() (m, n int) {
	return len(t.Chunks), t.N
}

//Characters of chunk idx
func (t *Text) Chars(idx int) []string {
	return strings.Split(t.Chunks[idx], "")
}

func (t *Text) String() string {
	m, n := t.Shape()
	more := "["
	sep := ""
	for i := 0; i < m && i < 3; i++ {
		more += sep + "'" + t.Chunks[i] + "'"
		sep = ","
	}
	if m > 3 {
		more += ",..."
	}
	return fmt.Sprintf("Text(%v,%v,%v])", m, n, more)
}
