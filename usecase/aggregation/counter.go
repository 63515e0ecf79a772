package aggregation

import "slices"

// rankedCounter counts keys and ranks them by count descending. Keys with the
// same count keep the order in which they were first seen.
type rankedCounter[K comparable] struct {
	order  []K
	counts map[K]int
}

type ranked[K comparable] struct {
	key   K
	count int
}

func newRankedCounter[K comparable]() *rankedCounter[K] {
	return &rankedCounter[K]{counts: make(map[K]int)}
}

func (c *rankedCounter[K]) add(key K) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top returns at most limit keys in rank order.
func (c *rankedCounter[K]) top(limit int) []ranked[K] {
	out := make([]ranked[K], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, ranked[K]{key: k, count: c.counts[k]})
	}
	slices.SortStableFunc(out, func(a, b ranked[K]) int {
		return b.count - a.count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
