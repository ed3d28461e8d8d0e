package neurotron

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/skelterjohn/go.matrix"
)

/*
Computes the learning increment of a cell. Each dendrite that spiked
spreads its decision over all s synapse slots: a slot whose source was
active gains pos delta, a slot whose source was silent loses neg delta.
Rows of dendrites that did not spike stay zero.
*/
func (t *Terminal) mind(k int, spikes []bool, V *matrix.DenseMatrix) *matrix.DenseMatrix {
	I := matrix.Zeros(t.K.D, t.K.S)
	for mu, spiked := range spikes {
		if !spiked {
			continue
		}
		row := make([]float64, t.K.S)
		for nu := range row {
			row[nu] = V.Get(mu, nu)
		}
		// 2*pos*V - neg
		floats.Scale(2*t.Delta.Pos, row)
		floats.AddConst(-t.Delta.Neg, row)
		for nu, val := range row {
			I.Set(mu, nu, val)
		}
		if t.Verbosity > 0 {
			fmt.Fprintf(t.Out, "mind I[%v].%v: %v\n", k, mu, formatRow(row))
		}
	}
	return I
}

/*
Applies the increments stored by the last Spike to every cell whose
eligibility bit is set. Permanences are clamped to [0,1] and the binary
weights are refreshed afterwards.
*/
func (t *Terminal) Learn(L *DenseBinaryMatrix) {
	if !t.Learning() {
		return
	}
	if L.Len() != t.P.Len() {
		fail(ErrShapeMismatch, "eligibility mask of %v cells, terminal has %v", L.Len(), t.P.Len())
	}

	for _, k := range t.P.Range() {
		if !L.GetK(k) {
			continue
		}
		for mu := 0; mu < t.P.D; mu++ {
			inc := t.I.rowFloats(k, mu)
			row := t.P.rowFloats(k, mu)
			floats.Add(row, inc)
			clamp(row, 0, 1)
			t.P.setRow(k, mu, row)
			if t.Verbosity > 0 && !allZero(inc) {
				fmt.Fprintf(t.Out, "learn P[%v].%v: %v by %v\n", k, mu, formatRow(row), formatRow(inc))
			}
		}
	}
	t.RefreshWeights()
}

func clamp(values []float64, lo, hi float64) {
	for i, val := range values {
		if val < lo {
			values[i] = lo
		} else if val > hi {
			values[i] = hi
		}
	}
}

func allZero(values []float64) bool {
	for _, val := range values {
		if val != 0 {
			return false
		}
	}
	return true
}
