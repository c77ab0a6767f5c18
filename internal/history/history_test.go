package history

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numerado/internal/randgen"
)

func batchOf(n int) []randgen.GeneratedValue {
	s := strconv.Itoa(n)
	return []randgen.GeneratedValue{{ID: "id-" + s, Display: s, Raw: float64(n)}}
}

func TestHistory_KeepsMostRecentTen(t *testing.T) {
	h := New(DefaultLimit)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 15; i++ {
		h.Push(batchOf(i), start.Add(time.Duration(i)*time.Second))
	}

	batches := h.Batches()
	require.Len(t, batches, 10)
	assert.Equal(t, 10, h.Len())
	for i, b := range batches {
		want := 15 - i
		assert.Equal(t, strconv.Itoa(want), b.Values[0].Display, "batch %d", i)
		assert.Equal(t, start.Add(time.Duration(want)*time.Second), b.GeneratedAt)
	}
}

func TestHistory_IgnoresEmptyBatches(t *testing.T) {
	h := New(3)
	h.Push(nil, time.Now())
	h.Push([]randgen.GeneratedValue{}, time.Now())
	assert.Equal(t, 0, h.Len())
}

func TestHistory_BatchesAreSnapshots(t *testing.T) {
	h := New(3)
	values := batchOf(1)
	h.Push(values, time.Now())

	values[0].Display = "mutated"
	got := h.Batches()
	assert.Equal(t, "1", got[0].Values[0].Display)

	got[0].Values[0].Display = "mutated again"
	assert.Equal(t, "1", h.Batches()[0].Values[0].Display)
}

func TestHistory_DefaultLimitAndClear(t *testing.T) {
	h := New(0)
	assert.Equal(t, DefaultLimit, h.Limit())

	h.Push(batchOf(1), time.Now())
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Batches())
}
