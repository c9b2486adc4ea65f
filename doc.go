/*
Package rhmap provides an in-memory hash table built on open addressing with
linear probing and Robin Hood displacement.

Map is designed to be a building block for higher-level structures such as
symbol tables, interning tables and caches. It keeps every entry in one
contiguous slot array and bounds the length of any probe sequence by the
base-2 logarithm of the table size, so lookups stay short and deterministic
even under heavy collision.

Basic usage:

	import "github.com/theflywheel/rhmap"

	// Create a table with 1024 home buckets that grows at 768 entries.
	m, err := rhmap.NewString[int](1024, 768)
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	m.Put("alpha", 1)
	m.Put("beta", 2)

	// Retrieve data
	if v, ok := m.Get("alpha"); ok {
		fmt.Println("Value:", v)
	}

	// Remove data
	prev, removed := m.Delete("beta")

Features:

  - Open addressing with linear probing; no chaining, no per-entry allocation
  - Robin Hood displacement keeps worst-case probe length near the average
  - Probe ceiling of floor(log2(size)) slots, enforced by growing the table
  - Guard band past the hashed range, so probe scans never wrap around
  - Per-table random hash seed drawn from crypto/rand to defeat crafted
    collision sets; redrawn on every growth
  - Pluggable hasher: seeded djb2 by default, xxHash64 available, or any
    Hasher over a comparable key type
  - Tombstone deletion that never cuts a probe sequence short

Implementation Details:

Each slot carries a key, a value and a tagged state: free, removed, or
occupied together with the entry's displacement from its home bucket. An
insert that meets a resident entry closer to its own home than the incoming
entry is to its home swaps the two and carries the evicted entry forward.
This is the Robin Hood rule; it minimizes the variance of displacement
across entries and is what makes the logarithmic probe ceiling workable.

The table grows by doubling once the live-entry count reaches its threshold,
or whenever a placement cannot finish within the probe ceiling. Growth
rehashes every live entry under the new size and a fresh seed and discards
tombstones. The table never shrinks.

A Map is not safe for concurrent use; callers must serialize all access.
*/
package rhmap
