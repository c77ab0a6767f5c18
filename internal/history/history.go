package history

import (
	"slices"
	"time"

	"github.com/abhisek/numerado/internal/randgen"
)

// DefaultLimit is the number of batches a session keeps.
const DefaultLimit = 10

// Batch is one generation's accepted values.
type Batch struct {
	Values      []randgen.GeneratedValue
	GeneratedAt time.Time
}

// History is a bounded list of batches, most recent first.
// Batches are copied on the way in and on the way out.
type History struct {
	limit   int
	batches []Batch
}

// New creates a History holding at most limit batches.
// A non-positive limit uses DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Push records values as the most recent batch, evicting the oldest batch
// once the limit is exceeded. Empty batches are ignored.
func (h *History) Push(values []randgen.GeneratedValue, at time.Time) {
	if len(values) == 0 {
		return
	}
	b := Batch{Values: slices.Clone(values), GeneratedAt: at}
	h.batches = append([]Batch{b}, h.batches...)
	if len(h.batches) > h.limit {
		h.batches = h.batches[:h.limit]
	}
}

// Batches returns a copy of the retained batches, most recent first.
func (h *History) Batches() []Batch {
	out := make([]Batch, len(h.batches))
	for i, b := range h.batches {
		out[i] = Batch{Values: slices.Clone(b.Values), GeneratedAt: b.GeneratedAt}
	}
	return out
}

// Len returns the number of retained batches.
func (h *History) Len() int {
	return len(h.batches)
}

// Limit returns the maximum number of retained batches.
func (h *History) Limit() int {
	return h.limit
}

// Clear drops every batch.
func (h *History) Clear() {
	h.batches = nil
}
