package service

import "sync/atomic"

// VisitCounter counts site visits in memory. The count resets on restart.
type VisitCounter struct {
	count atomic.Int64
}

// NewVisitCounter creates a VisitCounter starting at zero.
func NewVisitCounter() *VisitCounter {
	return &VisitCounter{}
}

// Track records one visit and returns the new total.
func (c *VisitCounter) Track() int64 {
	return c.count.Add(1)
}

// Count returns the current total.
func (c *VisitCounter) Count() int64 {
	return c.count.Load()
}
