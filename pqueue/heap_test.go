package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billy-4md/geodesic-distance/pqueue"
)

func TestHeap_InsertExtractOrder(t *testing.T) {
	h := pqueue.New(5)
	h.Insert(0, 5.0)
	h.Insert(1, 1.0)
	h.Insert(2, 3.0)
	h.Insert(3, 1.0) // tie with idx 1, should extract after it (FIFO)
	h.Insert(4, 2.0)

	var order []int
	for h.Len() > 0 {
		idx, _, ok := h.ExtractMin()
		require.True(t, ok)
		order = append(order, idx)
	}
	require.Equal(t, []int{1, 3, 4, 2, 0}, order)
}

func TestHeap_ContainsAndDecreaseKey(t *testing.T) {
	h := pqueue.New(3)
	require.False(t, h.Contains(0))
	h.Insert(0, 10.0)
	require.True(t, h.Contains(0))

	h.DecreaseKey(0, 2.0)
	idx, dist, ok := h.ExtractMin()
	require.True(t, ok)
	require.Equal(t, 0, idx)
	require.Equal(t, 2.0, dist)
	require.False(t, h.Contains(0))
}

func TestHeap_DecreaseKeyIgnoresIncrease(t *testing.T) {
	h := pqueue.New(2)
	h.Insert(0, 1.0)
	h.DecreaseKey(0, 5.0) // not a decrease, must be ignored
	_, dist, _ := h.ExtractMin()
	require.Equal(t, 1.0, dist)
}

func TestHeap_DecreaseKeyOnAbsentIsNoop(t *testing.T) {
	h := pqueue.New(2)
	require.NotPanics(t, func() { h.DecreaseKey(1, 3.0) })
	require.Equal(t, 0, h.Len())
}

func TestHeap_ExtractMinOnEmpty(t *testing.T) {
	h := pqueue.New(1)
	_, _, ok := h.ExtractMin()
	require.False(t, ok)
}

func TestHeap_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 500
	keys := make([]float64, n)
	h := pqueue.New(n)
	for i := 0; i < n; i++ {
		keys[i] = rng.Float64() * 1000
		h.Insert(i, keys[i])
	}

	type pair struct {
		idx int
		key float64
	}
	want := make([]pair, n)
	for i, k := range keys {
		want[i] = pair{i, k}
	}
	sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

	for i := 0; i < n; i++ {
		idx, dist, ok := h.ExtractMin()
		require.True(t, ok)
		require.Equal(t, want[i].idx, idx)
		require.Equal(t, want[i].key, dist)
	}
}
