package neurotron

import (
	"bytes"
	"fmt"
	"io"

	"github.com/htm-community/neurotron/utils"
)

/*
Record keeps the history of the state flags of every cell, one row per
captured tick and one column per cell.
*/
type Record struct {
	cells int

	u *SparseBinaryMatrix
	q *SparseBinaryMatrix
	x *SparseBinaryMatrix
	l *SparseBinaryMatrix
	b *SparseBinaryMatrix
	d *SparseBinaryMatrix
	y *SparseBinaryMatrix
	s *SparseBinaryMatrix
}

//Create empty record for the cells of a cluster
func NewRecord(c *Cluster) *Record {
	r := &Record{cells: c.Len()}
	r.Clear()
	return r
}

//Drops the history
func (r *Record) Clear() {
	r.u = NewSparseBinaryMatrix(0, r.cells)
	r.q = NewSparseBinaryMatrix(0, r.cells)
	r.x = NewSparseBinaryMatrix(0, r.cells)
	r.l = NewSparseBinaryMatrix(0, r.cells)
	r.b = NewSparseBinaryMatrix(0, r.cells)
	r.d = NewSparseBinaryMatrix(0, r.cells)
	r.y = NewSparseBinaryMatrix(0, r.cells)
	r.s = NewSparseBinaryMatrix(0, r.cells)
}

//Number of captured ticks
func (r *Record) Len() int {
	return r.u.Height
}

//Appends the current state of all cells. The learning flag is recorded as
//off when the prediction terminal cannot learn (both rates zero).
func (r *Record) Capture(c *Cluster) {
	if c.Len() != r.cells {
		fail(ErrShapeMismatch, "record of %v cells, cluster has %v", r.cells, c.Len())
	}
	r.u.AppendRow(c.U.Flatten())
	r.q.AppendRow(c.Q.Flatten())
	r.x.AppendRow(c.X.Flatten())
	r.b.AppendRow(c.B.Flatten())
	r.d.AppendRow(c.D.Flatten())
	r.y.AppendRow(c.Y.Flatten())
	r.s.AppendRow(c.S.Flatten())

	l := c.L.Flatten()
	if delta := c.predict.Delta; delta.Pos == 0 && delta.Neg == 0 {
		utils.FillSliceBool(l, false)
	}
	r.l.AppendRow(l)
}

//History of cell k, one state per tick
func (r *Record) History(k int) []CellState {
	result := make([]CellState, r.Len())
	for t := range result {
		result[t] = CellState{
			U: r.u.Get(t, k), Q: r.q.Get(t, k), D: r.d.Get(t, k), B: r.b.Get(t, k),
			X: r.x.Get(t, k), Y: r.y.Get(t, k), S: r.s.Get(t, k), L: r.l.Get(t, k),
		}
	}
	return result
}

func (s CellState) chunk() string {
	result := ""
	flags := []struct {
		on  bool
		tag string
	}{
		{s.U, "U"}, {s.Q, "Q"}, {s.X, "X"}, {s.L, "L"},
		{s.D, "D"}, {s.B, "B"}, {s.Y, "Y"}, {s.S, "S"},
	}
	for _, f := range flags {
		if f.on {
			result += f.tag
		}
	}
	return result
}

/*
Compact history string: per cell a '|' followed by the ticks of that cell.
A silent tick shows as '-', an active tick as its flags in the order
UQXLDBYS, active ticks after the first one are separated by ','.
*/
func (r *Record) Pattern() string {
	var buf bytes.Buffer
	for k := 0; k < r.cells; k++ {
		buf.WriteString("|")
		sep := ""
		for _, state := range r.History(k) {
			chunk := state.chunk()
			if chunk == "" {
				buf.WriteString("-")
			} else {
				buf.WriteString(sep + chunk)
				sep = ","
			}
		}
	}
	buf.WriteString("|")
	return buf.String()
}

//Writes the per flag history of all cells followed by the parts of y
func (r *Record) Log(w io.Writer, c *Cluster, y []bool, tag string) {
	fmt.Fprintf(w, "\nSummary: %v\n", tag)
	planes := []struct {
		tag string
		sm  *SparseBinaryMatrix
	}{
		{"u", r.u}, {"q", r.q}, {"x", r.x}, {"l", r.l},
		{"b", r.b}, {"d", r.d}, {"y", r.y}, {"s", r.s},
	}
	for _, p := range planes {
		fmt.Fprintf(w, "   %v:", p.tag)
		for k := 0; k < r.cells; k++ {
			fmt.Fprintf(w, " %v", utils.BoolString(p.sm.GetDenseCol(k)))
		}
		fmt.Fprintln(w)
	}
	ctx, f := c.Split(y)
	fmt.Fprintf(w, "y = [c,f]: [%v %v]\n", utils.BoolString(ctx), utils.BoolString(f))
}
