package neurotron

//Read only view on the state of one cell
type Cell struct {
	cluster *Cluster
	I       int
	J       int
}

//Returns the cell with linear index k
func (c *Cluster) Cell(k int) Cell {
	i, j := c.Kappa(k)
	return Cell{c, i, j}
}

//Returns cell [i,j]
func (c *Cluster) CellAt(i, j int) Cell {
	c.Index(i, j)
	return Cell{c, i, j}
}

//Linear index of the cell
func (c Cell) K() int {
	return c.cluster.Index(c.I, c.J)
}

func (c Cell) U() bool { return c.cluster.U.Get(c.I, c.J) }
func (c Cell) Q() bool { return c.cluster.Q.Get(c.I, c.J) }
func (c Cell) D() bool { return c.cluster.D.Get(c.I, c.J) }
func (c Cell) B() bool { return c.cluster.B.Get(c.I, c.J) }
func (c Cell) X() bool { return c.cluster.X.Get(c.I, c.J) }
func (c Cell) Y() bool { return c.cluster.Y.Get(c.I, c.J) }
func (c Cell) S() bool { return c.cluster.S.Get(c.I, c.J) }
func (c Cell) L() bool { return c.cluster.L.Get(c.I, c.J) }

//Learning rates of the prediction terminal
func (c Cell) Delta() Delta {
	return c.cluster.predict.Delta
}

//Snapshot of all state flags of a cell
type CellState struct {
	U bool
	Q bool
	D bool
	B bool
	X bool
	Y bool
	S bool
	L bool
}

func (c Cell) State() CellState {
	return CellState{
		U: c.U(), Q: c.Q(), D: c.D(), B: c.B(),
		X: c.X(), Y: c.Y(), S: c.S(), L: c.L(),
	}
}

/*
Five character summary of the state: [Q|U][X][L|S][B|D][Y], a '-' for
each position that is off. "UXL-Y" is an excited, predicted and learning
cell that became active.
*/
func (s CellState) String() string {
	result := []byte("-----")
	if s.Q {
		result[0] = 'Q'
	} else if s.U {
		result[0] = 'U'
	}
	if s.X {
		result[1] = 'X'
	}
	if s.L {
		result[2] = 'L'
	} else if s.S {
		result[2] = 'S'
	}
	if s.B {
		result[3] = 'B'
	} else if s.D {
		result[3] = 'D'
	}
	if s.Y {
		result[4] = 'Y'
	}
	return string(result)
}
