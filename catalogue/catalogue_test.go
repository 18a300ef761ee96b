package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
)

func proto(id catalogue.Identifier, weight uint32) *catalogue.Prototype[string] {
	return &catalogue.Prototype[string]{ID: id, Payload: "x", Weight: weight}
}

func TestNewCatalogueEmpty(t *testing.T) {
	_, err := catalogue.NewCatalogue[string](nil)
	require.ErrorIs(t, err, catalogue.ErrEmptyCatalogue)
}

func TestNewCatalogueBadWeight(t *testing.T) {
	_, err := catalogue.NewCatalogue([]*catalogue.Prototype[string]{proto(1, 0)})
	require.ErrorIs(t, err, catalogue.ErrBadWeight)
}

func TestNewCatalogueDuplicateID(t *testing.T) {
	_, err := catalogue.NewCatalogue([]*catalogue.Prototype[string]{proto(1, 1), proto(1, 1)})
	require.ErrorIs(t, err, catalogue.ErrDuplicateID)
}

func TestLookupAndLen(t *testing.T) {
	a, b := proto(1, 1), proto(2, 1)
	cat, err := catalogue.NewCatalogue([]*catalogue.Prototype[string]{a, b})
	require.NoError(t, err)

	require.Equal(t, 2, cat.Len())
	require.Same(t, a, cat.Lookup(1))
	require.Nil(t, cat.Lookup(99))
}

func TestCheckSymmetrySymmetricCatalogueHasNoViolations(t *testing.T) {
	a, b := proto(1, 1), proto(2, 1)
	a.Neighbours.Set(direction.Right, catalogue.NewIDSet(2))
	b.Neighbours.Set(direction.Left, catalogue.NewIDSet(1))

	cat, err := catalogue.NewCatalogue([]*catalogue.Prototype[string]{a, b})
	require.NoError(t, err)
	require.Empty(t, cat.CheckSymmetry())
}

func TestCheckSymmetryDetectsViolation(t *testing.T) {
	a, b := proto(1, 1), proto(2, 1)
	a.Neighbours.Set(direction.Right, catalogue.NewIDSet(2))
	// b does not list a as a permitted left neighbour.

	cat, err := catalogue.NewCatalogue([]*catalogue.Prototype[string]{a, b})
	require.NoError(t, err)

	violations := cat.CheckSymmetry()
	require.Len(t, violations, 1)
	require.Equal(t, catalogue.Identifier(1), violations[0].A)
	require.Equal(t, catalogue.Identifier(2), violations[0].B)
	require.Equal(t, direction.Right, violations[0].Direction)
}

func TestRepairFixesViolations(t *testing.T) {
	a, b := proto(1, 1), proto(2, 1)
	a.Neighbours.Set(direction.Right, catalogue.NewIDSet(2))

	cat, err := catalogue.NewCatalogue([]*catalogue.Prototype[string]{a, b})
	require.NoError(t, err)
	require.NotEmpty(t, cat.CheckSymmetry())

	cat.Repair()
	require.Empty(t, cat.CheckSymmetry())
	require.True(t, b.Neighbours.Get(direction.Left).Contains(1))
}

func TestIDSetIntersects(t *testing.T) {
	a := catalogue.NewIDSet(1, 2, 3)
	b := catalogue.NewIDSet(4, 5)
	c := catalogue.NewIDSet(5, 6)

	require.False(t, a.Intersects(b))
	require.True(t, b.Intersects(c))
}
