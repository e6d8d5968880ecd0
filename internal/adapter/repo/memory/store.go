package memory

import (
	"sync"

	"isocity/internal/app/ports"
	"isocity/internal/domain/city"
)

// Store holds the live city and an in-process journal. The mutex is the
// single writer lock over grid and ledger.
type Store struct {
	mu      sync.Mutex
	city    *city.City
	journal []ports.JournalEntry
	ids     map[string]struct{}
}

func NewStore(c *city.City) *Store {
	return &Store{city: c, ids: make(map[string]struct{})}
}
