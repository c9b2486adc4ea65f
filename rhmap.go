package rhmap

import (
	"fmt"
	"math/bits"
)

// slotState tags the lifecycle of a slot. The zero value is slotFree, so a
// freshly allocated slot array needs no initialization pass.
type slotState uint8

const (
	slotFree    slotState = iota // never used or cleared; terminates probing
	slotRemoved                  // tombstone: skipped by probing, reusable by placement
	slotUsed
)

// slot holds one entry. dist is the entry's displacement: how many slots past
// its home bucket it ended up. It is meaningful only when state is slotUsed.
type slot[K comparable, V any] struct {
	key   K
	val   V
	dist  int
	state slotState
}

// Map is an in-memory hash table using open addressing with linear probing
// and Robin Hood displacement.
//
// The table addresses size home buckets and allocates maxProbes extra slots
// past them as a guard band, so probe scans never wrap around. maxProbes is
// floor(log2(size)): the displacement of any entry is bounded by it, and it
// grows by roughly one each time the table doubles.
//
// A Map is not safe for concurrent use. Callers that share one across
// goroutines must serialize every operation, reads included, since growth
// replaces the backing array.
type Map[K comparable, V any] struct {
	slots     []slot[K, V] // size home buckets plus the guard band
	size      int          // home buckets addressable by the hash
	maxProbes int          // displacement ceiling: floor(log2(size))
	maxPairs  int          // occupancy threshold that triggers growth
	numPairs  int          // live entries; tombstones are not counted
	seed      uint64       // per-instance hash seed
	hash      Hasher[K]
}

// New creates a Map with size home buckets that grows once maxPairs entries
// are live. size is practically a power of two, since the probe ceiling is
// derived from its log2. The hasher must fold the supplied seed into every
// hash; see StringHash and XXHash.
func New[K comparable, V any](size, maxPairs int, hash Hasher[K]) (*Map[K, V], error) {
	if size < 1 {
		return nil, fmt.Errorf("rhmap: size must be at least 1, got %d", size)
	}
	if maxPairs < 1 {
		return nil, fmt.Errorf("rhmap: maxPairs must be at least 1, got %d", maxPairs)
	}
	if hash == nil {
		return nil, fmt.Errorf("rhmap: hasher must not be nil")
	}
	m := &Map[K, V]{hash: hash}
	m.init(size, maxPairs, randomSeed())
	return m, nil
}

// NewString creates a Map keyed by strings using the default seeded djb2
// hasher.
func NewString[V any](size, maxPairs int) (*Map[string, V], error) {
	return New[string, V](size, maxPairs, StringHash)
}

// init (re)builds the backing array for the given parameters. Everything but
// the hasher is replaced; previously held entries are gone.
func (m *Map[K, V]) init(size, maxPairs int, seed uint64) {
	maxProbes := ilog2(size)
	m.slots = make([]slot[K, V], size+maxProbes)
	m.size = size
	m.maxProbes = maxProbes
	m.maxPairs = maxPairs
	m.numPairs = 0
	m.seed = seed
}

// bucket returns the home bucket index for key under the current seed.
func (m *Map[K, V]) bucket(key K) int {
	return int(m.hash(key, m.seed) % uint64(m.size))
}

// lookup returns the slot index holding key. A scan inspects at most
// maxProbes consecutive slots starting at the home bucket; a free slot ends
// it early (no occupied entry can sit past a gap), a tombstone does not. An
// occupied slot matches only when its displacement equals the scan offset and
// its key compares equal.
func (m *Map[K, V]) lookup(key K) (int, bool) {
	i := m.bucket(key)
	for dist := 0; dist < m.maxProbes; i, dist = i+1, dist+1 {
		s := &m.slots[i]
		if s.state == slotFree {
			break
		}
		if s.state == slotUsed && s.dist == dist && s.key == key {
			return i, true
		}
	}
	return 0, false
}

// Get returns the value stored for key, and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.lookup(key); ok {
		return m.slots[i].val, true
	}
	var zero V
	return zero, false
}

// Put inserts key with val, or updates the value in place when key is already
// present. An update never changes Len. Inserting may grow the table: either
// because the live count has reached maxPairs, or because placement could not
// find a slot within the probe ceiling.
func (m *Map[K, V]) Put(key K, val V) {
	if m.numPairs >= m.maxPairs {
		m.grow()
	}

	// Update path first. Placement below assumes the key is absent: with
	// tombstones reusable by placement, a merged update-and-place scan can
	// drop a second copy of a key in front of the existing one.
	if i, ok := m.lookup(key); ok {
		m.slots[i].val = val
		return
	}

	m.place(key, val)
	m.numPairs++
}

// place finds a slot for a key known to be absent, applying the Robin Hood
// rule: a resident entry closer to its home than the candidate is to its own
// gets displaced, and the scan continues carrying the evicted entry. Whenever
// the carried entry's displacement would reach maxProbes, the table grows and
// placement restarts from the carried entry's new home bucket.
func (m *Map[K, V]) place(key K, val V) {
	cur := slot[K, V]{key: key, val: val, state: slotUsed}
	for {
		i := m.bucket(cur.key)
		for dist := 0; dist < m.maxProbes; i, dist = i+1, dist+1 {
			s := &m.slots[i]
			if s.state != slotUsed {
				// Free slot or tombstone: the carried entry lands here.
				cur.dist = dist
				*s = cur
				return
			}
			if s.dist < dist {
				// Robin Hood swap: the resident is richer. It keeps probing
				// from here with its own displacement; i stays equal to the
				// carried entry's home plus dist.
				evicted := *s
				cur.dist = dist
				*s = cur
				cur = evicted
				dist = evicted.dist
			}
		}
		m.grow()
	}
}

// Delete removes key, returning the value it held. The slot becomes a
// tombstone: later scans pass over it, and a later placement may reuse it.
// Missing keys are not an error.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	i, ok := m.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	prev := m.slots[i].val
	// Zero the entry so the table drops its references to key and value.
	m.slots[i] = slot[K, V]{state: slotRemoved}
	m.numPairs--
	return prev, true
}

// grow doubles size and maxPairs, recomputes the probe ceiling, draws a fresh
// seed and re-places every live entry under the new geometry. Tombstones are
// dropped. Re-placement runs through place, so a pathological distribution in
// the larger table simply grows it again.
func (m *Map[K, V]) grow() {
	old := m.slots
	live := m.numPairs
	m.init(m.size*2, m.maxPairs*2, randomSeed())
	for i := range old {
		if old[i].state == slotUsed {
			m.place(old[i].key, old[i].val)
		}
	}
	m.numPairs = live
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.numPairs }

// Cap returns the number of home buckets the hash currently addresses. It
// only ever increases; the table does not shrink on delete.
func (m *Map[K, V]) Cap() int { return m.size }

// Reset clears the table in place, keeping the backing array, geometry and
// seed. All entries and tombstones are discarded.
func (m *Map[K, V]) Reset() {
	for i := range m.slots {
		m.slots[i] = slot[K, V]{}
	}
	m.numPairs = 0
}

// ilog2 returns floor(log2(n)) for n >= 1.
func ilog2(n int) int {
	return bits.Len(uint(n)) - 1
}
