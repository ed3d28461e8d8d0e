//
// Code related to cluster stats
//

package neurotron

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/htm-community/neurotron/utils"
)

type ClusterStats struct {
	NTicks int
	//cells predicted for the current tick (summed over ticks)
	NPredictions int
	//confirmed predictions (summed over ticks)
	NHits int

	CurActive          int
	CurBursting        int
	CurBurstingColumns int
	CurPredicted       int
	CurLearning        int
	CurDepressed       int

	//fraction of active cells per tick
	Activity []float64

	lastPredicted int
}

func NewClusterStats() *ClusterStats {
	return new(ClusterStats)
}

func (s *ClusterStats) update(c *Cluster) {
	s.NTicks++
	s.CurActive = c.Y.TotalNonZeroCount()
	s.CurBursting = c.B.TotalNonZeroCount()
	s.CurBurstingColumns = utils.CountTrue(c.B.ColumnAny())
	s.CurPredicted = c.S.TotalNonZeroCount()
	s.CurLearning = c.L.TotalNonZeroCount()
	s.CurDepressed = c.D.TotalNonZeroCount()

	s.NPredictions += s.lastPredicted
	s.NHits += s.CurLearning
	s.lastPredicted = s.CurPredicted

	s.Activity = append(s.Activity, float64(s.CurActive)/float64(c.Len()))
}

//Fraction of predicted cells that became active in the following tick
func (s *ClusterStats) HitRatio() float64 {
	if s.NPredictions == 0 {
		return 0
	}
	return float64(s.NHits) / float64(s.NPredictions)
}

//Mean fraction of active cells per tick
func (s *ClusterStats) MeanActivity() float64 {
	if len(s.Activity) == 0 {
		return 0
	}
	return floats.Sum(s.Activity) / float64(len(s.Activity))
}

func (s *ClusterStats) ToString() string {
	result := "Stats: \n"

	result += fmt.Sprintf("nTicks %v \n", s.NTicks)
	result += fmt.Sprintf("nPredictions %v \n", s.NPredictions)
	result += fmt.Sprintf("nHits %v \n", s.NHits)
	result += fmt.Sprintf("HitRatio %v \n", s.HitRatio())
	result += fmt.Sprintf("MeanActivity %v \n", s.MeanActivity())
	result += fmt.Sprintf("CurActive %v \n", s.CurActive)
	result += fmt.Sprintf("CurBursting %v \n", s.CurBursting)
	result += fmt.Sprintf("CurBurstingColumns %v \n", s.CurBurstingColumns)
	result += fmt.Sprintf("CurPredicted %v \n", s.CurPredicted)
	result += fmt.Sprintf("CurLearning %v \n", s.CurLearning)
	result += fmt.Sprintf("CurDepressed %v \n", s.CurDepressed)

	return result
}
