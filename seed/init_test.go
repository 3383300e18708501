package seed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billy-4md/geodesic-distance/grid"
	"github.com/billy-4md/geodesic-distance/seed"
)

func TestInit_Basic(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	S := []byte{0, 1, 0, 0}
	D, state, frontier, err := seed.Init(g, S)
	require.NoError(t, err)
	require.Equal(t, []int{1}, frontier)
	require.Equal(t, seed.Frozen, state[1])
	require.Equal(t, seed.Far, state[0])
	require.Equal(t, float32(0), D[1])
	require.True(t, math.IsInf(float64(D[0]), 1))
}

func TestInit_EmptySeed(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	D, state, frontier, err := seed.Init(g, make([]byte, 4))
	require.ErrorIs(t, err, seed.ErrEmptySeed)
	require.Nil(t, frontier)
	require.Len(t, D, 4)
	for i, d := range D {
		require.True(t, math.IsInf(float64(d), 1))
		require.Equal(t, seed.Far, state[i])
	}
}

func TestInit_ShapeMismatch(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, _, _, err = seed.Init(g, make([]byte, 3))
	require.ErrorIs(t, err, seed.ErrShapeMismatch)
}
