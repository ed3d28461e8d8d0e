package neurotron

import (
	"io"
	"os"

	"github.com/cznic/mathutil"
	"github.com/skelterjohn/go.matrix"
)

//Learning rates: positive delta for active sources, negative delta for
//inactive sources on a firing dendrite
type Delta struct {
	Pos float64
	Neg float64
}

/*
Params for initializing a terminal
*/
type TerminalParams struct {
	//If the permanence value for a synapse is greater than this value, it is said
	//to be connected.
	Eta float64
	//Minimum number of active connected synapses on a dendrite to spike,
	//0 means take the threshold of the setup
	Theta int
	Delta Delta

	Verbosity int
	Out       io.Writer
}

//Create default terminal params
func NewTerminalParams() *TerminalParams {
	p := new(TerminalParams)
	p.Eta = 0.5
	p.Delta = Delta{0.1, 0.1}
	p.Out = os.Stdout
	return p
}

/*
A terminal binds a synapse tensor triple (source indices K, permanences P,
binary weights W) to a spike threshold. A simple terminal carries no
tensors and passes feedforward bits straight through to every cell of the
matching minicolumn.
*/
type Terminal struct {
	M int
	N int

	K *Field
	P *Field
	W *Field
	//learning increments computed by the last Spike
	I *Field

	Eta       float64
	Theta     int
	Delta     Delta
	Verbosity int
	Out       io.Writer
}

//Create pass through terminal for an m x n cell grid
func NewSimpleTerminal(m, n int) *Terminal {
	t := new(Terminal)
	t.M = m
	t.N = n
	t.Out = os.Stdout
	return t
}

//Create terminal from synapse setup
func NewTerminal(setup *Setup, params *TerminalParams) *Terminal {
	if setup.K == nil || setup.W == nil {
		panic("Setup must provide K and W")
	}
	if params == nil {
		params = NewTerminalParams()
	}

	t := new(Terminal)
	t.M = setup.K.M
	t.N = setup.K.N
	t.K = setup.K
	t.P = setup.P
	t.W = setup.W
	t.Eta = params.Eta
	t.Theta = params.Theta
	if t.Theta == 0 {
		t.Theta = setup.Theta
	}
	t.Delta = params.Delta
	t.Verbosity = params.Verbosity
	t.Out = params.Out
	if t.Out == nil {
		t.Out = os.Stdout
	}

	if t.P != nil {
		t.I = NewField(t.K.M, t.K.N, t.K.D, t.K.S)
		t.RefreshWeights()
	}
	return t
}

//True for pass through terminals without synapse tensors
func (t *Terminal) Simple() bool {
	return t.K == nil
}

//True if the terminal carries permanences and can learn
func (t *Terminal) Learning() bool {
	return t.P != nil
}

//Recomputes W = P > eta for every cell. Fixed masks are left untouched.
func (t *Terminal) RefreshWeights() *Field {
	if t.P == nil {
		return t.W
	}
	for _, k := range t.P.Range() {
		t.refreshWeight(k, false)
	}
	return t.W
}

func (t *Terminal) refreshWeight(k int, inclusive bool) {
	p, w := t.P.tile(k), t.W.tile(k)
	for mu := 0; mu < t.P.D; mu++ {
		for nu := 0; nu < t.P.S; nu++ {
			on := p.Get(mu, nu) > t.Eta || (inclusive && p.Get(mu, nu) == t.Eta)
			if on {
				w.Set(mu, nu, 1)
			} else {
				w.Set(mu, nu, 0)
			}
		}
	}
}

//Gathers source bits v[K[k]] of cell k as a d x s 0/1 matrix
func (t *Terminal) gather(v []bool, k int) *matrix.DenseMatrix {
	idx := t.K.tile(k)
	V := matrix.Zeros(t.K.D, t.K.S)
	for mu := 0; mu < t.K.D; mu++ {
		for nu := 0; nu < t.K.S; nu++ {
			src := int(idx.Get(mu, nu))
			if src < 0 || src >= len(v) {
				fail(ErrIndexOutOfRange, "synapse source %v of cell %v outside input of length %v", src, k, len(v))
			}
			if v[src] {
				V.Set(mu, nu, 1)
			}
		}
	}
	return V
}

//Weighted and masked source bits V AND W per cell
func (t *Terminal) Empower(v []bool) *Field {
	if t.Simple() {
		panic("Simple terminal has no synapses to empower")
	}
	t.RefreshWeights()
	E := NewField(t.K.M, t.K.N, t.K.D, t.K.S)
	for _, k := range t.K.Range() {
		V := t.gather(v, k)
		w := t.W.tile(k)
		for mu := 0; mu < t.K.D; mu++ {
			for nu := 0; nu < t.K.S; nu++ {
				E.tile(k).Set(mu, nu, V.Get(mu, nu)*w.Get(mu, nu))
			}
		}
	}
	return E
}

/*
Calculates the spike pattern of every cell: dendrite mu of cell k spikes
if at least theta of its connected synapses see an active source. For a
learning terminal the per synapse learning increment is stored in I as a
side effect. Simple terminals return a single spike bit per cell.
*/
func (t *Terminal) Spike(v []bool) [][]bool {
	if t.Simple() {
		J := t.simple(v)
		result := make([][]bool, J.Len())
		for k := range result {
			result[k] = []bool{J.GetK(k)}
		}
		return result
	}

	t.RefreshWeights()
	result := make([][]bool, t.K.Len())
	for _, k := range t.K.Range() {
		V := t.gather(v, k)
		w := t.W.tile(k)
		spikes := make([]bool, t.K.D)
		for mu := 0; mu < t.K.D; mu++ {
			sum := 0
			for nu := 0; nu < t.K.S; nu++ {
				if V.Get(mu, nu) > 0 && w.Get(mu, nu) > 0 {
					sum++
				}
			}
			spikes[mu] = sum >= t.Theta
		}
		result[k] = spikes

		if t.Learning() {
			t.I.Set(k, t.mind(k, spikes, V))
		}
	}
	return result
}

//Did at least one dendrite of a cell spike, as m x n matrix
func (t *Terminal) Fire(v []bool) *DenseBinaryMatrix {
	if t.Simple() {
		return t.simple(v)
	}
	S := t.Spike(v)
	J := NewDenseBinaryMatrix(t.M, t.N)
	for k, spikes := range S {
		for _, s := range spikes {
			if s {
				J.SetK(k, true)
				break
			}
		}
	}
	return J
}

//Every cell of minicolumn j sees feedforward bit v[j]
func (t *Terminal) simple(v []bool) *DenseBinaryMatrix {
	J := NewDenseBinaryMatrix(t.M, t.N)
	for j := 0; j < mathutil.Min(t.N, len(v)); j++ {
		for i := 0; i < t.M; i++ {
			J.Set(i, j, v[j])
		}
	}
	return J
}

//Zeros all synapse tensors
func (t *Terminal) Clear() {
	if t.Simple() {
		return
	}
	for _, k := range t.K.Range() {
		zero := matrix.Zeros(t.K.D, t.K.S)
		t.K.Set(k, zero)
		t.W.Set(k, zero)
		if t.P != nil {
			t.P.Set(k, zero)
			t.I.Set(k, zero)
		}
	}
}

//Copy of the learning increment of cell k
func (t *Terminal) Increment(k int) *matrix.DenseMatrix {
	if !t.Learning() {
		return nil
	}
	return t.I.Get(k)
}

//Overrides the learning increment of cell k
func (t *Terminal) SetIncrement(k int, tile *matrix.DenseMatrix) {
	if !t.Learning() {
		panic("Terminal has no permanences")
	}
	t.I.Set(k, tile)
}
