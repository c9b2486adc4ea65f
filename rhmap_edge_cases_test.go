package rhmap_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/theflywheel/rhmap"
)

// collideAll funnels every key into bucket 0, exercising the Robin Hood
// displacement path and the probe ceiling directly.
func collideAll(string, uint64) uint64 { return 0 }

// TestFullCollisionChain inserts keys that all share one home bucket. With
// 1024 home buckets the probe ceiling is 10, so eight colliding keys fit in
// one chain without growing the table.
func TestFullCollisionChain(t *testing.T) {
	m, err := rhmap.New[string, int](1024, 768, collideAll)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	for i := 0; i < 8; i++ {
		m.Put(fmt.Sprintf("collide-%d", i), i)
	}

	if m.Cap() != 1024 {
		t.Fatalf("Cap = %d, want 1024 (no growth expected)", m.Cap())
	}
	for i := 0; i < 8; i++ {
		key := fmt.Sprintf("collide-%d", i)
		if v, ok := m.Get(key); !ok || v != i {
			t.Fatalf("Get(%q) = %d,%v; want %d,true", key, v, ok, i)
		}
	}
}

// TestDeleteInsideChain removes an entry from the middle of a collision
// chain. The tombstone must not cut off entries displaced past it.
func TestDeleteInsideChain(t *testing.T) {
	m, err := rhmap.New[string, int](1024, 768, collideAll)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	keys := []string{"k0", "k1", "k2", "k3", "k4"}
	for i, key := range keys {
		m.Put(key, i)
	}

	if _, removed := m.Delete("k2"); !removed {
		t.Fatal("Delete(k2) reported absent")
	}

	if _, ok := m.Get("k2"); ok {
		t.Error("k2 still found after delete")
	}
	for i, key := range keys {
		if key == "k2" {
			continue
		}
		if v, ok := m.Get(key); !ok || v != i {
			t.Errorf("Get(%q) = %d,%v after deleting k2; want %d,true", key, v, ok, i)
		}
	}

	// A later insert may reuse the vacated slot, and the chain must still be
	// fully reachable afterwards.
	m.Put("k5", 5)
	for i, key := range []string{"k0", "k1", "k3", "k4", "k5"} {
		want := []int{0, 1, 3, 4, 5}[i]
		if v, ok := m.Get(key); !ok || v != want {
			t.Errorf("Get(%q) = %d,%v after reuse; want %d,true", key, v, ok, want)
		}
	}
}

// TestDuplicateAfterTombstone re-inserts a key whose probe window contains a
// tombstone. The update contract must hold: one entry, latest value.
func TestDuplicateAfterTombstone(t *testing.T) {
	m, err := rhmap.New[string, int](1024, 768, collideAll)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	for i := 0; i < 5; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}
	m.Delete("k0") // tombstone at the head of k4's probe window

	m.Put("k4", 400)

	if v, ok := m.Get("k4"); !ok || v != 400 {
		t.Fatalf("Get(k4) = %d,%v; want 400,true", v, ok)
	}
	if m.Len() != 4 {
		t.Fatalf("Len = %d, want 4 (k4 must not be duplicated)", m.Len())
	}

	// Deleting once must fully remove it.
	m.Delete("k4")
	if v, ok := m.Get("k4"); ok {
		t.Fatalf("Get(k4) = %d,true after delete; want absent", v)
	}
}

// TestBinaryKeys verifies that keys are compared by full byte content; NUL
// bytes in the middle of a key do not truncate it.
func TestBinaryKeys(t *testing.T) {
	m, err := rhmap.NewString[int](16, 12)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	m.Put("a\x00b", 1)
	m.Put("a\x00c", 2)
	m.Put("a", 3)

	if v, ok := m.Get("a\x00b"); !ok || v != 1 {
		t.Errorf("Get(a\\x00b) = %d,%v; want 1,true", v, ok)
	}
	if v, ok := m.Get("a\x00c"); !ok || v != 2 {
		t.Errorf("Get(a\\x00c) = %d,%v; want 2,true", v, ok)
	}
	if v, ok := m.Get("a"); !ok || v != 3 {
		t.Errorf("Get(a) = %d,%v; want 3,true", v, ok)
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
}

func TestXXHashHasher(t *testing.T) {
	m, err := rhmap.New[string, int](8, 6, rhmap.XXHash)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}

	if m.Len() != 100 {
		t.Fatalf("Len = %d, want 100", m.Len())
	}
	if m.Cap() <= 8 {
		t.Fatalf("Cap = %d, expected growth past 8", m.Cap())
	}
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i)
		if v, ok := m.Get(key); !ok || v != i {
			t.Fatalf("Get(%q) = %d,%v; want %d,true", key, v, ok, i)
		}
	}
}

// TestGrowthManyKeys starts from the smallest useful table and pushes it
// through many doublings.
func TestGrowthManyKeys(t *testing.T) {
	m, err := rhmap.NewString[int](8, 6)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	const n = 10_000
	for i := 0; i < n; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}

	if m.Len() != n {
		t.Fatalf("Len = %d, want %d", m.Len(), n)
	}
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("key-%d", i)
		if v, ok := m.Get(key); !ok || v != i {
			t.Fatalf("Get(%q) = %d,%v; want %d,true", key, v, ok, i)
		}
	}
}

// TestRandomStress interleaves puts and deletes against a reference map.
func TestRandomStress(t *testing.T) {
	m, err := rhmap.NewString[int](16, 12)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}

	ref := make(map[string]int)
	r := rand.New(rand.NewSource(12345))

	for op := 0; op < 20_000; op++ {
		key := fmt.Sprintf("key-%d", r.Intn(700))
		switch r.Intn(3) {
		case 0, 1:
			ref[key] = op
			m.Put(key, op)
		case 2:
			want, inRef := ref[key]
			prev, removed := m.Delete(key)
			if removed != inRef {
				t.Fatalf("op %d: Delete(%q) removed=%v, reference says %v", op, key, removed, inRef)
			}
			if inRef && prev != want {
				t.Fatalf("op %d: Delete(%q) previous value %d, want %d", op, key, prev, want)
			}
			delete(ref, key)
		}
	}

	if m.Len() != len(ref) {
		t.Fatalf("Len = %d, reference has %d", m.Len(), len(ref))
	}
	for key, want := range ref {
		if v, ok := m.Get(key); !ok || v != want {
			t.Fatalf("Get(%q) = %d,%v; want %d,true", key, v, ok, want)
		}
	}
	for i := 700; i < 750; i++ {
		key := fmt.Sprintf("key-%d", i)
		if _, ok := m.Get(key); ok {
			t.Fatalf("Get(%q) found a key that was never inserted", key)
		}
	}
}
