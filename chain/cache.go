package chain

import (
	"fmt"
	"hash/maphash"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/keychain/keypad"
)

// DefaultPartitions is the partition count used by NewCache.
const DefaultPartitions = 16

// cacheKey names one resolved movement: at level, from → to.
type cacheKey struct {
	level    int32
	from, to keypad.Key
}

func (k cacheKey) hash(seed maphash.Seed) uint64 {
	b := [6]byte{byte(k.level), byte(k.level >> 8), byte(k.level >> 16), byte(k.level >> 24), byte(k.from), byte(k.to)}
	return maphash.Bytes(seed, b[:])
}

type entry struct {
	cost    uint64
	lookups uint64 // hits served by this entry
}

type part struct {
	mu sync.Mutex
	m  map[cacheKey]*entry
}

// Cache memoizes resolved press counts per (level, from, to).
//
// Entries are spread over mutex-guarded partitions by key hash. A stored
// value is never replaced: LoadOrStore keeps the first one.
//
// A Cache is bound to the first Chain it is used with; costs depend on the
// chain depth, so reuse with another chain fails with ErrCacheMismatch.
type Cache struct {
	seed  maphash.Seed
	parts []*part
	owner atomic.Pointer[Chain]

	hits, misses atomic.Uint64
}

// CacheStats summarizes cache usage.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewCache returns an empty cache with DefaultPartitions partitions.
func NewCache() *Cache { return NewPartitionedCache(DefaultPartitions) }

// NewPartitionedCache returns an empty cache with n partitions (n < 1 means 1).
func NewPartitionedCache(n int) *Cache {
	if n < 1 {
		n = 1
	}
	c := &Cache{seed: maphash.MakeSeed(), parts: make([]*part, n)}
	for i := range c.parts {
		c.parts[i] = &part{m: make(map[cacheKey]*entry)}
	}
	return c
}

// bind ties the cache to ch on first use.
func (c *Cache) bind(ch *Chain) error {
	if c.owner.CompareAndSwap(nil, ch) || c.owner.Load() == ch {
		return nil
	}
	return ErrCacheMismatch
}

func (c *Cache) part(k cacheKey) *part {
	return c.parts[k.hash(c.seed)%uint64(len(c.parts))]
}

// Load returns the cached cost of from → to at level.
func (c *Cache) Load(level int, from, to keypad.Key) (uint64, bool) {
	k := cacheKey{level: int32(level), from: from, to: to}
	p := c.part(k)
	p.mu.Lock()
	e, ok := p.m[k]
	var v uint64
	if ok {
		e.lookups++
		v = e.cost
	}
	p.mu.Unlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// LoadOrStore stores cost unless the key is present. It returns the value
// held by the cache afterwards and whether it was already there.
func (c *Cache) LoadOrStore(level int, from, to keypad.Key, cost uint64) (uint64, bool) {
	k := cacheKey{level: int32(level), from: from, to: to}
	p := c.part(k)
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.m[k]; ok {
		return e.cost, true
	}
	p.m[k] = &entry{cost: cost}
	return cost, false
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	n := 0
	for _, p := range c.parts {
		p.mu.Lock()
		n += len(p.m)
		p.mu.Unlock()
	}
	return n
}

// Stats returns a snapshot of the entry count and hit/miss counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Entries: c.Len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Dump writes one line per entry, ordered by level then keys:
//
//	level from to cost lookups
func (c *Cache) Dump(w io.Writer) error {
	all := make(map[cacheKey]entry)
	for _, p := range c.parts {
		p.mu.Lock()
		for k, e := range p.m {
			all[k] = *e
		}
		p.mu.Unlock()
	}
	keys := maps.Keys(all)
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.level != b.level {
			return a.level < b.level
		}
		if a.from != b.from {
			return a.from < b.from
		}
		return a.to < b.to
	})
	for _, k := range keys {
		e := all[k]
		if _, err := fmt.Fprintf(w, "%d %v %v %d %d\n", k.level, k.from, k.to, e.cost, e.lookups); err != nil {
			return err
		}
	}
	return nil
}
