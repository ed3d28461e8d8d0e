package neurotron

import (
	"math/rand"

	"github.com/skelterjohn/go.matrix"
)

/*
Field is a 4-index synapse tensor (cell row, cell column, dendrite,
synapse slot) stored as an m x n grid of d x s tiles. A tile is addressed
either by (row,col) or by the linear cell index k = row + col*m.
*/
type Field struct {
	M int
	N int
	D int
	S int

	tiles []*matrix.DenseMatrix
}

//Create new zero field of specified shape
func NewField(m, n, d, s int) *Field {
	if m <= 0 || n <= 0 || d < 0 || s < 0 {
		fail(ErrShapeMismatch, "invalid field shape (%v,%v,%v,%v)", m, n, d, s)
	}
	f := &Field{M: m, N: n, D: d, S: s}
	f.tiles = make([]*matrix.DenseMatrix, m*n)
	for k := range f.tiles {
		f.tiles[k] = matrix.Zeros(d, s)
	}
	return f
}

//Create field with uniform random entries in [0,1), or random integers in
//[0,modulus) if modulus > 0
func NewRandField(m, n, d, s int, rnd *rand.Rand, modulus int) *Field {
	f := NewField(m, n, d, s)
	big := matrix.Zeros(m*d, n*s)
	for i := 0; i < m*d; i++ {
		for j := 0; j < n*s; j++ {
			if modulus > 0 {
				big.Set(i, j, float64(rnd.Intn(modulus)))
			} else {
				big.Set(i, j, rnd.Float64())
			}
		}
	}
	f.SetFlat(big)
	return f
}

//Converts linear cell index to row/col
func (f *Field) Kappa(k int) (i, j int) {
	if k < 0 || k >= f.Len() {
		fail(ErrIndexOutOfRange, "cell index %v not in [0,%v)", k, f.Len())
	}
	return k % f.M, k / f.M
}

//Converts row/col to linear cell index
func (f *Field) Index(i, j int) int {
	if i < 0 || i >= f.M || j < 0 || j >= f.N {
		fail(ErrIndexOutOfRange, "cell [%v,%v] outside %vx%v field", i, j, f.M, f.N)
	}
	return i + j*f.M
}

//Number of cells
func (f *Field) Len() int {
	return f.M * f.N
}

//Linear cell indices in storage order
func (f *Field) Range() []int {
	result := make([]int, f.Len())
	for k := range result {
		result[k] = k
	}
	return result
}

//Returns a copy of the tile of cell k
func (f *Field) Get(k int) *matrix.DenseMatrix {
	f.Kappa(k)
	return f.tiles[k].Copy()
}

//Returns a copy of the tile of cell [i,j]
func (f *Field) At(i, j int) *matrix.DenseMatrix {
	return f.tiles[f.Index(i, j)].Copy()
}

//Replaces the tile of cell k
func (f *Field) Set(k int, tile *matrix.DenseMatrix) {
	f.Kappa(k)
	if tile.Rows() != f.D || tile.Cols() != f.S {
		fail(ErrShapeMismatch, "tile %vx%v, field expects %vx%v", tile.Rows(), tile.Cols(), f.D, f.S)
	}
	f.tiles[k] = tile.Copy()
}

//Replaces the tile of cell [i,j]
func (f *Field) SetAt(i, j int, tile *matrix.DenseMatrix) {
	f.Set(f.Index(i, j), tile)
}

//Slices a (m*d) x (n*s) matrix into tiles
func (f *Field) SetFlat(big *matrix.DenseMatrix) {
	if big.Rows() != f.M*f.D || big.Cols() != f.N*f.S {
		fail(ErrShapeMismatch, "flat matrix %vx%v, expected %vx%v", big.Rows(), big.Cols(), f.M*f.D, f.N*f.S)
	}
	for i := 0; i < f.M; i++ {
		for j := 0; j < f.N; j++ {
			tile := matrix.Zeros(f.D, f.S)
			for mu := 0; mu < f.D; mu++ {
				for nu := 0; nu < f.S; nu++ {
					tile.Set(mu, nu, big.Get(i*f.D+mu, j*f.S+nu))
				}
			}
			f.tiles[i+j*f.M] = tile
		}
	}
}

//Copys a field
func (f *Field) Copy() *Field {
	result := &Field{M: f.M, N: f.N, D: f.D, S: f.S}
	result.tiles = make([]*matrix.DenseMatrix, len(f.tiles))
	for k, tile := range f.tiles {
		result.tiles[k] = tile.Copy()
	}
	return result
}

func (f *Field) Equals(other *Field) bool {
	if f.M != other.M || f.N != other.N || f.D != other.D || f.S != other.S {
		return false
	}
	for k, tile := range f.tiles {
		for mu := 0; mu < f.D; mu++ {
			for nu := 0; nu < f.S; nu++ {
				if tile.Get(mu, nu) != other.tiles[k].Get(mu, nu) {
					return false
				}
			}
		}
	}
	return true
}

//Direct (non copying) access for internal hot loops
func (f *Field) tile(k int) *matrix.DenseMatrix {
	return f.tiles[k]
}

func (f *Field) rowFloats(k, mu int) []float64 {
	result := make([]float64, f.S)
	for nu := range result {
		result[nu] = f.tiles[k].Get(mu, nu)
	}
	return result
}

func (f *Field) rowInts(k, mu int) []int {
	result := make([]int, f.S)
	for nu := range result {
		result[nu] = int(f.tiles[k].Get(mu, nu))
	}
	return result
}

func (f *Field) setRow(k, mu int, values []float64) {
	for nu, val := range values {
		f.tiles[k].Set(mu, nu, val)
	}
}
