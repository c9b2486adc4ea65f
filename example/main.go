package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/rhmap"
)

func main() {
	// Create a table with 16 home buckets that grows at 12 entries.
	m, err := rhmap.NewString[int](16, 12)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	fmt.Println("Map created successfully")

	// Insert some data
	for i := 0; i < 10; i++ {
		m.Put(fmt.Sprintf("item-%d", i), i*100)
	}

	fmt.Printf("Inserted 10 key-value pairs (len=%d, cap=%d)\n", m.Len(), m.Cap())

	// Retrieve and display some values, including misses
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("item-%d", i)
		if value, found := m.Get(key); found {
			fmt.Printf("Key %s => Value %d\n", key, value)
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value
	m.Put("item-2", 999)
	if value, found := m.Get("item-2"); found {
		fmt.Printf("Updated item-2 => Value %d\n", value)
	}

	// Remove a value
	if prev, removed := m.Delete("item-3"); removed {
		fmt.Printf("Removed item-3 (previous value %d)\n", prev)
	}
	if _, found := m.Get("item-3"); !found {
		fmt.Println("item-3 is gone")
	}

	fmt.Printf("Example completed successfully (len=%d)\n", m.Len())
}
