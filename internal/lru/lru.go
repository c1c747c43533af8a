/*
Copyright 2015 To gocql authors
Copyright 2013 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lru implements an LRU cache.
package lru

import (
	"container/list"
	"sync"
)

// Cache is an LRU cache. It is safe for concurrent access.
//
// This cache has been forked from github.com/golang/groupcache/lru and made
// generic over comparable keys. Values are built on demand by GetOrCreate and
// each one is built exactly once, even when callers miss the same key at the
// same time.
type Cache[K comparable, V any] struct {
	// MaxEntries is the maximum number of cache entries before
	// an item is evicted. Zero means no limit.
	MaxEntries int

	// OnEvicted optionally specifies a callback function to be
	// executed when an entry is purged from the cache. It runs with the
	// cache lock held and is not called for entries still being created.
	OnEvicted func(key K, value V)

	ll    *list.List
	cache map[K]*list.Element
	mu    sync.Mutex
}

type entry[K comparable, V any] struct {
	key   K
	value V
	// done is closed once value is set.
	done chan struct{}
}

func (e *entry[K, V]) ready() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// New creates a new Cache.
// If maxEntries is zero, the cache has no limit and it's assumed
// that eviction is done by the caller.
func New[K comparable, V any](maxEntries int) *Cache[K, V] {
	return &Cache[K, V]{
		MaxEntries: maxEntries,
		ll:         list.New(),
		cache:      make(map[K]*list.Element),
	}
}

// GetOrCreate returns the value for key, calling create to build it when it
// is missing. The entry is reserved under the lock, so create runs once per
// missing key; concurrent callers for the same key wait for it to finish.
// create is called without the cache lock held. The second result is true
// if another caller created (or is creating) the value.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) (V, bool) {
	c.mu.Lock()
	ele, hit := c.cache[key]
	if hit {
		c.ll.MoveToFront(ele)
	} else {
		ele = c.addLocked(key)
	}
	ent := ele.Value.(*entry[K, V])
	c.mu.Unlock()

	if hit {
		<-ent.done
		return ent.value, true
	}

	defer close(ent.done)
	ent.value = create()
	return ent.value, false
}

func (c *Cache[K, V]) addLocked(key K) *list.Element {
	ele := c.ll.PushFront(&entry[K, V]{key: key, done: make(chan struct{})})
	c.cache[key] = ele
	if c.MaxEntries != 0 && c.ll.Len() > c.MaxEntries {
		c.removeOldestLocked()
	}
	return ele
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	l := c.ll.Len()
	c.mu.Unlock()
	return l
}

// Remove removes the provided key from the cache.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, hit := c.cache[key]; hit {
		c.removeElementLocked(ele)
		return true
	}

	return false
}

// Purge removes every entry.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.ll.Len() > 0 {
		c.removeOldestLocked()
	}
}

func (c *Cache[K, V]) removeOldestLocked() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElementLocked(ele)
	}
}

func (c *Cache[K, V]) removeElementLocked(e *list.Element) {
	c.ll.Remove(e)
	kv := e.Value.(*entry[K, V])
	delete(c.cache, kv.key)
	if c.OnEvicted != nil && kv.ready() {
		c.OnEvicted(kv.key, kv.value)
	}
}
