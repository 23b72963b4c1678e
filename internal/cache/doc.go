// Package cache provides EntityCache, a bounded least-recently-used cache
// for domain entities keyed by their numeric ID.
//
// The cache is built on hashicorp/golang-lru's simplelru and guarded by a
// single mutex, so every operation, including the recency update performed
// by Get, is atomic with respect to other operations.
package cache
