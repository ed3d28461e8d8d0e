package neurotron

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/htm-community/neurotron/encoders"
	"github.com/htm-community/neurotron/utils"
)

/*
Params for initializing a cluster
*/
type ClusterParams struct {
	//Cells per minicolumn (m)
	CellsPerColumn int
	//Minicolumns (n)
	Columns int
	//Dendrites per cell (d)
	Dendrites int
	//Synapse slots per dendrite (s)
	Synapses int
	//Length of the feedforward part of y, 0 means Columns
	Feedforward int
	//Random prediction wiring, otherwise blank synapses grown by Connect
	Random bool
	Seed   int64
	//If the permanence value for a synapse is greater than this value, it is said
	//to be connected.
	Eta          float64
	CollabTheta  int
	PredictTheta int
	Delta        Delta
	CollectStats bool

	Verbosity int
	Out       io.Writer
}

//Create default cluster params
func NewClusterParams() *ClusterParams {
	p := new(ClusterParams)
	p.CellsPerColumn = 4
	p.Columns = 10
	p.Dendrites = 2
	p.Synapses = 5
	p.Eta = 0.5
	p.CollabTheta = 1
	p.PredictTheta = 3
	p.Delta = Delta{0.1, 0.1}
	p.Out = os.Stdout
	return p
}

/*
Cluster of m x n cells organized in n minicolumns. Each tick runs the
pipeline relax, stimu, react, depress, excite, burst, predict over the
input vector y = context ++ feedforward, where the context part has one
bit per cell in linear order k = i + j*m.
*/
type Cluster struct {
	params ClusterParams

	m int
	n int
	d int
	s int
	//sizes of feedforward (M) and context (N) parts of y
	sizeM int
	sizeN int

	cdx []int
	fdx []int

	//feedforward excited
	U *DenseBinaryMatrix
	//copy of U kept through depression
	Q *DenseBinaryMatrix
	//depressed by a column mate
	D *DenseBinaryMatrix
	//bursting
	B *DenseBinaryMatrix
	//predicted during the previous tick
	X *DenseBinaryMatrix
	//active
	Y *DenseBinaryMatrix
	//predicted for the next tick
	S *DenseBinaryMatrix
	//learning
	L *DenseBinaryMatrix

	excite  *Terminal
	collab  *Terminal
	predict *Terminal

	rnd   *rand.Rand
	ticks int
	stats *ClusterStats
}

//Create new cluster, random wiring is seeded from params.Seed
func NewCluster(params *ClusterParams) *Cluster {
	return NewClusterRand(params, rand.New(rand.NewSource(params.Seed)))
}

//Create new cluster drawing random wiring from rnd
func NewClusterRand(params *ClusterParams, rnd *rand.Rand) *Cluster {
	if params.CellsPerColumn <= 0 || params.Columns <= 0 ||
		params.Dendrites <= 0 || params.Synapses <= 0 {
		panic("Cluster shape parameters must be positive")
	}
	if params.Feedforward < 0 {
		panic("Feedforward size cannot be negative")
	}

	c := new(Cluster)
	c.params = *params
	if c.params.Out == nil {
		c.params.Out = os.Stdout
	}
	c.m = params.CellsPerColumn
	c.n = params.Columns
	c.d = params.Dendrites
	c.s = params.Synapses
	c.sizeN = c.m * c.n
	c.sizeM = params.Feedforward
	if c.sizeM == 0 {
		c.sizeM = c.n
	}
	c.rnd = rnd

	c.cdx = make([]int, c.sizeN)
	utils.FillSliceWithIdxInt(c.cdx)
	c.fdx = make([]int, c.sizeM)
	for i := range c.fdx {
		c.fdx[i] = c.sizeN + i
	}

	c.excite = NewSimpleTerminal(c.m, c.n)

	tp := NewTerminalParams()
	tp.Eta = params.Eta
	tp.Theta = params.CollabTheta
	tp.Out = c.params.Out
	c.collab = NewTerminal(CollabSetup(c.m, c.n), tp)

	var wiring *rand.Rand
	if params.Random {
		if rnd == nil {
			panic("Random wiring requires a random generator")
		}
		wiring = rnd
	}
	tp = NewTerminalParams()
	tp.Eta = params.Eta
	tp.Theta = params.PredictTheta
	tp.Delta = params.Delta
	tp.Verbosity = params.Verbosity
	tp.Out = c.params.Out
	c.predict = NewTerminal(PredictSetup(c.m, c.n, c.d, c.s, params.PredictTheta, wiring), tp)

	c.U = c.zero()
	c.Q = c.zero()
	c.D = c.zero()
	c.B = c.zero()
	c.X = c.zero()
	c.Y = c.zero()
	c.S = c.zero()
	c.L = c.zero()

	if params.CollectStats {
		c.stats = NewClusterStats()
	}
	return c
}

func (c *Cluster) zero() *DenseBinaryMatrix {
	return NewDenseBinaryMatrix(c.m, c.n)
}

//Returns the cluster shape (m,n,d,s)
func (c *Cluster) Shape() (m, n, d, s int) {
	return c.m, c.n, c.d, c.s
}

//Returns the feedforward size M and context size N of y
func (c *Cluster) Sizes() (M, N int) {
	return c.sizeM, c.sizeN
}

//Number of cells
func (c *Cluster) Len() int {
	return c.sizeN
}

//Linear cell indices
func (c *Cluster) Range() []int {
	result := make([]int, c.sizeN)
	utils.FillSliceWithIdxInt(result)
	return result
}

//Converts a linear cell index to (row,col)
func (c *Cluster) Kappa(k int) (i, j int) {
	return c.U.Kappa(k)
}

//Converts (row,col) to a linear cell index
func (c *Cluster) Index(i, j int) int {
	return c.U.Index(i, j)
}

//Pass through feedforward terminal
func (c *Cluster) ExciteTerminal() *Terminal {
	return c.excite
}

//Column mate terminal driving depression
func (c *Cluster) CollabTerminal() *Terminal {
	return c.collab
}

//Learning terminal driving prediction
func (c *Cluster) PredictTerminal() *Terminal {
	return c.predict
}

//Number of completed ticks
func (c *Cluster) Ticks() int {
	return c.ticks
}

//Returns collected stats, nil unless CollectStats is set
func (c *Cluster) Stats() *ClusterStats {
	return c.stats
}

func (c *Cluster) checkInput(y []bool) {
	if len(y) != c.sizeN+c.sizeM {
		fail(ErrShapeMismatch, "input of length %v, cluster expects %v+%v", len(y), c.sizeN, c.sizeM)
	}
}

//Splits y into context and feedforward part
func (c *Cluster) Split(y []bool) (context, feedforward []bool) {
	c.checkInput(y)
	return utils.SubsetSliceBool(y, c.cdx), utils.SubsetSliceBool(y, c.fdx)
}

//Builds the next input from the current activity and feedforward bits f
func (c *Cluster) Input(f []bool) []bool {
	if len(f) != c.sizeM {
		fail(ErrShapeMismatch, "feedforward of length %v, cluster expects %v", len(f), c.sizeM)
	}
	return utils.ConcatBool(c.Y.Flatten(), f)
}

//Writes Y into the context part of y
func (c *Cluster) update(y []bool) []bool {
	copy(y[:c.sizeN], c.Y.Flatten())
	return y
}

//Zeros U,Q,D,B,Y,S and publishes the empty activity. X and L carry over.
func (c *Cluster) Relax(y []bool) []bool {
	c.checkInput(y)
	c.U.Clear()
	c.Q.Clear()
	c.D.Clear()
	c.B.Clear()
	c.Y.Clear()
	c.S.Clear()
	return c.update(y)
}

//Feedforward excitation of all cells of a column
func (c *Cluster) Stimulate(y []bool) []bool {
	_, f := c.Split(y)
	c.U = c.excite.Fire(f)
	return y
}

//Activates excited cells that were predicted and lets them learn
func (c *Cluster) React(y []bool) []bool {
	c.checkInput(y)
	c.Y = c.U.And(c.X)
	c.L = c.X.And(c.Y)
	c.predict.Learn(c.L)
	return c.update(y)
}

//Depresses cells with an active column mate
func (c *Cluster) Depress(y []bool) []bool {
	ctx, _ := c.Split(y)
	c.D = c.collab.Fire(ctx)
	return y
}

//Retains the feedforward excitation in Q
func (c *Cluster) Excite(y []bool) []bool {
	c.checkInput(y)
	c.Q = c.U.Copy()
	return y
}

//Excited cells without a depressing column mate burst and become active
func (c *Cluster) Burst(y []bool) []bool {
	c.checkInput(y)
	c.B = c.D.Not().And(c.Q)
	c.Y = c.Y.Or(c.B)
	return c.update(y)
}

//Computes the predictions consumed by the next tick
func (c *Cluster) Predict(y []bool) []bool {
	ctx, _ := c.Split(y)
	c.S = c.predict.Fire(ctx)
	c.X = c.S.Copy()
	return y
}

//Runs one tick of the pipeline
func (c *Cluster) Iterate(y []bool) []bool {
	stages := []struct {
		name string
		fn   func([]bool) []bool
	}{
		{"relax", c.Relax},
		{"stimu", c.Stimulate},
		{"react", c.React},
		{"depress", c.Depress},
		{"excite", c.Excite},
		{"burst", c.Burst},
		{"predict", c.Predict},
	}

	for _, stage := range stages {
		y = stage.fn(y)
		if c.params.Verbosity > 1 {
			fmt.Fprintf(c.params.Out, "%v ...\n", stage.name)
			fmt.Fprint(c.params.Out, c.StateMap())
		}
	}

	c.ticks++
	if c.stats != nil {
		c.stats.update(c)
	}
	return y
}

//Decodes the active and the predicted columns of the cluster
func (c *Cluster) Decode(tok *encoders.Token) (output, predicted string) {
	return tok.Decode(c.Y.ColumnAny()), tok.Decode(c.X.ColumnAny())
}
