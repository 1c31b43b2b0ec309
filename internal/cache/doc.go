// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint32, *Outline](256)
//	o := c.GetOrCreate(id, func() *Outline { return load(id) })
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
