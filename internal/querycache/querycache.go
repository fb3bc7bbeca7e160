// Package querycache caches server responses under hierarchical keys and
// invalidates them after mutations. The policy is deliberately coarse:
// a mutation drops the whole list branch of its entity family (plus the one
// known detail entry), and a stale list is replaced wholesale on the next
// read, never patched or merged.
package querycache

import (
	"net/url"
	"strconv"
	"strings"
	"sync"
)

const sep = "\x1f"

// FamilyKey is the root of an entity family's key branch.
func FamilyKey(family string) string { return family }

// ListBranch is the prefix shared by every list key of a family.
func ListBranch(family string) string { return family + sep + "list" }

// ListKey identifies one cached list response: family + canonicalized filter
// parameters. url.Values.Encode sorts keys, so equal filters always produce
// the same key regardless of construction order.
func ListKey(family string, filters url.Values) string {
	return ListBranch(family) + sep + filters.Encode()
}

// DetailKey identifies one cached detail response.
func DetailKey(family string, id int64) string {
	return family + sep + "detail" + sep + strconv.FormatInt(id, 10)
}

type entry struct {
	value any
	token uint64
}

// Cache is a thread-safe response cache with per-key request-generation
// tokens. Overlapping requests for the same key each take a token from
// Begin; only a completion carrying the latest token is stored, so a slow
// early response can never overwrite data from a later request.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	seq     map[string]uint64
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		seq:     make(map[string]uint64),
	}
}

// Get returns the cached value for key, if any.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Begin issues the next request-generation token for key. Call it before
// dispatching a request whose response will be stored under key.
func (c *Cache) Begin(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq[key]++
	return c.seq[key]
}

// Complete stores value under key if token is still the latest issued for
// that key. It reports whether the value was stored; a false return means a
// newer request superseded this one and the response must be discarded.
func (c *Cache) Complete(key string, token uint64, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq[key] {
		return false
	}
	c.entries[key] = entry{value: value, token: token}
	return true
}

// Put stores value under key unconditionally, bypassing token checks. Used
// for values the client produced itself rather than raced responses.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, token: c.seq[key]}
}

// Invalidate removes the single entry stored under key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateBranch removes every entry under prefix, including the prefix
// key itself.
func (c *Cache) InvalidateBranch(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k == prefix || strings.HasPrefix(k, prefix+sep) {
			delete(c.entries, k)
		}
	}
}

// InvalidateAfterMutation applies the cache-coherence policy for a completed
// mutation on family: the list branch is dropped unconditionally, and the
// detail entry for id is dropped when the id is known (non-zero).
func (c *Cache) InvalidateAfterMutation(family string, id int64) {
	c.InvalidateBranch(ListBranch(family))
	if id != 0 {
		c.Invalidate(DetailKey(family, id))
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
