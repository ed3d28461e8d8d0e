package neurotron

//A synapse slot of a dendrite
type Synapse struct {
	Source     int
	Permanence float64
	Weight     bool
}

// The Dendrite struct is a read only snapshot of one dendrite row of a
//terminal, the synapses it owns and whether it is still free.
type Dendrite struct {
	Cell     int
	Index    int
	Synapses []Synapse
}

//Returns a snapshot of dendrite mu of cell k
func (t *Terminal) Dendrite(k, mu int) *Dendrite {
	if t.Simple() {
		return nil
	}
	t.K.Kappa(k)
	if mu < 0 || mu >= t.K.D {
		fail(ErrIndexOutOfRange, "dendrite %v not in [0,%v)", mu, t.K.D)
	}
	den := &Dendrite{Cell: k, Index: mu}
	den.Synapses = make([]Synapse, t.K.S)
	for nu := range den.Synapses {
		syn := &den.Synapses[nu]
		syn.Source = int(t.K.tile(k).Get(mu, nu))
		syn.Weight = t.W.tile(k).Get(mu, nu) > 0
		if t.P != nil {
			syn.Permanence = t.P.tile(k).Get(mu, nu)
		}
	}
	return den
}

//Source indices of all synapses
func (d *Dendrite) Sources() []int {
	result := make([]int, len(d.Synapses))
	for i, syn := range d.Synapses {
		result[i] = syn.Source
	}
	return result
}

func (d *Dendrite) Permanences() []float64 {
	result := make([]float64, len(d.Synapses))
	for i, syn := range d.Synapses {
		result[i] = syn.Permanence
	}
	return result
}

func (d *Dendrite) Weights() []bool {
	result := make([]bool, len(d.Synapses))
	for i, syn := range d.Synapses {
		result[i] = syn.Weight
	}
	return result
}

//A dendrite is free while all of its permanences are zero
func (d *Dendrite) Free() bool {
	for _, syn := range d.Synapses {
		if syn.Permanence != 0 {
			return false
		}
	}
	return true
}

//Number of connected synapses whose source is active in v
func (d *Dendrite) Overlap(v []bool) int {
	count := 0
	for _, syn := range d.Synapses {
		if syn.Weight && syn.Source < len(v) && v[syn.Source] {
			count++
		}
	}
	return count
}
