package neurotron

import (
	"math/rand"
)

//Synapse tensors and spike threshold a Terminal is built from. P is nil
//for terminals with a fixed binary mask.
type Setup struct {
	K     *Field
	P     *Field
	W     *Field
	Theta int
}

/*
Collaboration wiring: every cell listens with a single dendrite to all
other cells of its own minicolumn, so one active column mate is enough to
depress it.
*/
func CollabSetup(m, n int) *Setup {
	s := &Setup{Theta: 1}
	s.K = NewField(m, n, 1, m-1)
	s.W = NewField(m, n, 1, m-1)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			k := i + j*m
			nu := 0
			for l := 0; l < m; l++ {
				if l == i {
					continue
				}
				s.K.tile(k).Set(0, nu, float64(l+m*j))
				s.W.tile(k).Set(0, nu, 1)
				nu++
			}
		}
	}
	return s
}

/*
Prediction wiring over the context vector of all m*n cells. With a random
generator the source indices are drawn uniformly from [0,m*n) and the
permanences from [0,1); without one all synapses start blank (index 0,
permanence 0) and are grown with Cluster.Connect.
*/
func PredictSetup(m, n, d, s, theta int, rnd *rand.Rand) *Setup {
	setup := &Setup{Theta: theta}
	if rnd != nil {
		setup.K = NewRandField(m, n, d, s, rnd, m*n)
		setup.P = NewRandField(m, n, d, s, rnd, 0)
	} else {
		setup.K = NewField(m, n, d, s)
		setup.P = NewField(m, n, d, s)
	}
	setup.W = NewField(m, n, d, s)
	return setup
}
