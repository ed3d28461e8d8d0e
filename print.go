//
// Code related to symbolic printing of fields and cluster state
//

package neurotron

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cznic/mathutil"
)

//Symbol of a cell or source index: 0-9, A-Z, a-z, then 3 digit numbers
func Symbol(x int) string {
	switch {
	case x < 10:
		return string(rune(48 + x))
	case x < 36:
		return string(rune(55 + x))
	case x < 62:
		return string(rune(61 + x))
	}
	return fmt.Sprintf("%03d", x)
}

/*
Permanence symbol: '0' and '1' for the bounds, '<' and '>' outside of
them, lower case letters below 0.5 (a close to 0.5) and upper case letters
from 0.5 on (A close to 0.5).
*/
func PermanenceSymbol(p float64) string {
	switch {
	case p < 0:
		return "<"
	case p == 0:
		return "0"
	case p == 1:
		return "1"
	case p > 1:
		return ">"
	case p < 0.5:
		return string(rune(97 + int(math.Floor((0.5-p)*100/2))))
	}
	return string(rune(65 + int(math.Floor((p-0.5)*100/2))))
}

//Bar of length n, labeled with index k and symbol when k >= 0
func bar(n int, label string, k int) string {
	str := "---"
	if k >= 0 {
		str = fmt.Sprintf("%03d", k)
		if len(label) > 0 {
			str += "/" + label
		}
	}
	for len(str) < n {
		str += "-"
		if len(str) < n {
			str = "-" + str
		}
	}
	return str
}

//Header line of cell row i, the closing line for i < 0
func head(i, m, n, width int) string {
	line := "+"
	for j := 0; j < n; j++ {
		if i < 0 {
			line += bar(width, "", -1) + "+"
		} else {
			k := i + j*m
			line += bar(width, Symbol(k), k) + "+"
		}
	}
	return line
}

func center(str string, width int) string {
	for len(str) < width {
		str += " "
		if len(str) < width {
			str = " " + str
		}
	}
	return str
}

//Renders an m x n grid of cells with d lines per cell
func table(m, n, d, width int, label string, cell func(k, mu int) string) string {
	var buf bytes.Buffer
	tab := strings.Repeat(" ", len(label))
	for i := 0; i < m; i++ {
		trailer := tab
		if i == 0 {
			trailer = label
		}
		buf.WriteString(trailer + head(i, m, n, width) + "\n")
		for mu := 0; mu < d; mu++ {
			buf.WriteString(tab + "|")
			for j := 0; j < n; j++ {
				buf.WriteString(center(cell(i+j*m, mu), width) + "|")
			}
			buf.WriteString("\n")
		}
	}
	buf.WriteString(tab + head(-1, m, n, width) + "\n")
	return buf.String()
}

func (f *Field) mapString(label string, symbol func(x float64) string) string {
	return table(f.M, f.N, f.D, mathutil.Max(f.S, 7), label, func(k, mu int) string {
		str := ""
		for _, x := range f.rowFloats(k, mu) {
			str += symbol(x)
		}
		return str
	})
}

//Table of source indices
func (f *Field) IndexMap(label string) string {
	return f.mapString(label, func(x float64) string { return Symbol(int(x)) })
}

//Table of permanence symbols
func (f *Field) PermanenceMap(label string) string {
	return f.mapString(label, PermanenceSymbol)
}

//Table of binary weights
func (f *Field) WeightMap(label string) string {
	return f.mapString(label, func(x float64) string {
		if x > 0.5 {
			return "1"
		}
		return "0"
	})
}

//Index, permanence and weight tables of a terminal
func (t *Terminal) Map() string {
	if t.Simple() {
		return "K: None\nP: None\nW: None\n"
	}
	result := t.K.IndexMap("K: ")
	if t.P == nil {
		result += "P: None\n"
	} else {
		result += t.P.PermanenceMap("P: ")
	}
	return result + t.W.WeightMap("W: ")
}

//Table of the five character state of every cell
func (c *Cluster) StateMap() string {
	return table(c.m, c.n, 1, 7, "", func(k, mu int) string {
		return c.Cell(k).State().String()
	})
}

func formatRow(values []float64) string {
	parts := make([]string, len(values))
	for i, val := range values {
		parts[i] = strconv.FormatFloat(val, 'g', 4, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
