package neurotron

import (
	"fmt"

	"github.com/htm-community/neurotron/utils"
)

/*
Grows prediction synapses: every target cell in kdx gets a dendrite
listening to the context indices idx. A dendrite already wired to exactly
idx is reused, otherwise the first free dendrite (all permanences zero) is
claimed, its sources set to idx padded with index 0 and the permanences of
the used slots set to 0.5. Weights of touched cells are refreshed with
P >= eta.

Returns an ErrSynapseExhausted error if a target has neither a matching nor
a free dendrite. All targets are checked before any synapse is written.
*/
func (c *Cluster) Connect(idx, kdx []int) error {
	t := c.predict
	if len(idx) > c.s {
		return fmt.Errorf("%w: more than %v indices provided (%v)", ErrShapeMismatch, c.s, len(idx))
	}
	for _, src := range idx {
		if src < 0 || src >= c.sizeN {
			return fmt.Errorf("%w: source index %v not in [0,%v)", ErrIndexOutOfRange, src, c.sizeN)
		}
	}

	row := make([]float64, c.s)
	for nu, src := range idx {
		row[nu] = float64(src)
	}

	// pass 1: pick a dendrite for every target, -1 means already wired
	plan := make([]int, len(kdx))
	for i, k := range kdx {
		if k < 0 || k >= c.sizeN {
			return fmt.Errorf("%w: target cell %v not in [0,%v)", ErrIndexOutOfRange, k, c.sizeN)
		}
		plan[i] = c.freeDendrite(k, idx)
		if plan[i] == -2 {
			return fmt.Errorf("%w: no free dendrite on cell %v", ErrSynapseExhausted, k)
		}
	}

	// pass 2: wire
	for i, k := range kdx {
		mu := plan[i]
		if mu >= 0 {
			perm := make([]float64, c.s)
			for nu := range idx {
				perm[nu] = 0.5
			}
			t.K.setRow(k, mu, row)
			t.P.setRow(k, mu, perm)
		}
		t.refreshWeight(k, true)
	}
	return nil
}

//Returns the dendrite of cell k to wire idx to, -1 if some dendrite is
//already wired to idx and -2 if none is free
func (c *Cluster) freeDendrite(k int, idx []int) int {
	t := c.predict
	free := -2
	for mu := 0; mu < c.d; mu++ {
		den := t.Dendrite(k, mu)
		if !den.Free() && utils.EqualInt(den.Sources()[:len(idx)], idx) &&
			allZeroInts(den.Sources()[len(idx):]) {
			return -1
		}
		if free == -2 && den.Free() {
			free = mu
		}
	}
	return free
}

func allZeroInts(values []int) bool {
	for _, val := range values {
		if val != 0 {
			return false
		}
	}
	return true
}
