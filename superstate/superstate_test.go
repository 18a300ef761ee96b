package superstate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
	"github.com/Mechazawa/wave-function-collapse/superstate"
)

func proto(id catalogue.Identifier, weight uint32) *catalogue.Prototype[string] {
	return &catalogue.Prototype[string]{ID: id, Payload: "x", Weight: weight}
}

func emptyNeighbours() direction.Neighbors[catalogue.IDSet] {
	var n direction.Neighbors[catalogue.IDSet]
	for _, d := range direction.All {
		n.Set(d, catalogue.IDSet{})
	}
	return n
}

func TestNewEntropyMatchesPossibleCount(t *testing.T) {
	s := superstate.New([]*catalogue.Prototype[string]{proto(1, 1), proto(2, 1), proto(3, 1)})
	require.Equal(t, 3, s.Entropy())
	require.Equal(t, 3, s.BaseEntropy())
	require.False(t, s.Collapsing())
	require.Nil(t, s.Collapsed())
}

func TestTickWithNoConstraintsIsNoOp(t *testing.T) {
	s := superstate.New([]*catalogue.Prototype[string]{proto(1, 1), proto(2, 1)})
	s.Tick(emptyNeighbours())
	require.Equal(t, 2, s.Entropy())
}

func TestTickFiltersIncompatiblePrototypes(t *testing.T) {
	a, b := proto(1, 1), proto(2, 1)
	a.Neighbours.Set(direction.Right, catalogue.NewIDSet(10))
	b.Neighbours.Set(direction.Right, catalogue.NewIDSet(20))

	s := superstate.New([]*catalogue.Prototype[string]{a, b})

	n := emptyNeighbours()
	n.Set(direction.Right, catalogue.NewIDSet(10))
	s.Tick(n)

	require.Equal(t, 1, s.Entropy())
	require.Equal(t, catalogue.Identifier(1), s.Collapsed().ID)
}

func TestTickOnCollapsedIsNoOp(t *testing.T) {
	s := superstate.New([]*catalogue.Prototype[string]{proto(1, 1)})
	require.Equal(t, 1, s.Entropy())

	n := emptyNeighbours()
	n.Set(direction.Up, catalogue.NewIDSet(999))
	s.Tick(n)

	require.Equal(t, 1, s.Entropy())
	require.NotNil(t, s.Collapsed())
}

func TestTickCanContradict(t *testing.T) {
	a, b := proto(1, 1), proto(2, 1)
	a.Neighbours.Set(direction.Down, catalogue.NewIDSet(10))
	b.Neighbours.Set(direction.Down, catalogue.NewIDSet(11))

	s := superstate.New([]*catalogue.Prototype[string]{a, b})

	n := emptyNeighbours()
	n.Set(direction.Down, catalogue.NewIDSet(99))
	s.Tick(n)

	require.Equal(t, 0, s.Entropy())
	require.Nil(t, s.Collapsed())
}

func TestCollapseIsDeterministicForAGivenSeed(t *testing.T) {
	possible := []*catalogue.Prototype[string]{proto(1, 1), proto(2, 1), proto(3, 1), proto(4, 1)}

	s1 := superstate.New(possible)
	s2 := superstate.New(possible)

	c1 := s1.Collapse(rand.New(rand.NewSource(42)))
	c2 := s2.Collapse(rand.New(rand.NewSource(42)))

	require.Equal(t, c1.ID, c2.ID)
	require.Equal(t, 1, s1.Entropy())
}

func TestCollapseIsNoOpOnceSingular(t *testing.T) {
	s := superstate.New([]*catalogue.Prototype[string]{proto(1, 1)})
	got := s.Collapse(rand.New(rand.NewSource(1)))
	require.Nil(t, got)
	require.Equal(t, 1, s.Entropy())
}

func TestCollapseRespectsWeights(t *testing.T) {
	heavy := proto(1, 1000)
	light := proto(2, 1)

	counts := map[catalogue.Identifier]int{}
	for i := int64(0); i < 500; i++ {
		s := superstate.New([]*catalogue.Prototype[string]{heavy, light})
		chosen := s.Collapse(rand.New(rand.NewSource(i)))
		counts[chosen.ID]++
	}

	require.Greater(t, counts[heavy.ID], counts[light.ID])
}

func TestCloneIsIndependent(t *testing.T) {
	s := superstate.New([]*catalogue.Prototype[string]{proto(1, 1), proto(2, 1)})
	clone := s.Clone()

	n := emptyNeighbours()
	n.Set(direction.Up, catalogue.NewIDSet(1))
	clone.Tick(n)

	require.Equal(t, 2, s.Entropy())
}

func TestIDsReflectsPossible(t *testing.T) {
	s := superstate.New([]*catalogue.Prototype[string]{proto(1, 1), proto(2, 1)})
	ids := s.IDs()
	require.True(t, ids.Contains(1))
	require.True(t, ids.Contains(2))
	require.False(t, ids.Contains(3))
}

func TestTickAboveParallelThresholdMatchesSequential(t *testing.T) {
	var possible []*catalogue.Prototype[string]
	for i := catalogue.Identifier(1); i <= superstate.ParallelThreshold+10; i++ {
		p := proto(i, 1)
		if i%2 == 0 {
			p.Neighbours.Set(direction.Left, catalogue.NewIDSet(10))
		} else {
			p.Neighbours.Set(direction.Left, catalogue.NewIDSet(20))
		}
		possible = append(possible, p)
	}

	s := superstate.New(possible)
	n := emptyNeighbours()
	n.Set(direction.Left, catalogue.NewIDSet(10))
	s.Tick(n)

	require.Equal(t, (superstate.ParallelThreshold+10)/2, s.Entropy())
	for _, p := range s.Possible() {
		require.Equal(t, catalogue.Identifier(0), p.ID%2)
	}
}
