// Package cache provides a small generic LRU cache.
//
// The renderer keeps palette lookup tables per iteration budget in one, and
// the explorer keeps recently published frames so that returning to an
// earlier view does not render it again.
//
//	c := cache.New[int, *Table](8)
//	t, ok := c.Get(500)
//	if !ok {
//	    t = build(500)
//	    c.Set(500, t)
//	}
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
