package memory

import (
	"context"

	"isocity/internal/app/ports"
)

// JournalRepo keeps entries in memory. Append runs inside TxManager.RunInTx
// and relies on its lock; List takes the lock itself and must not be called
// from inside a transaction.
type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(_ context.Context, entries []ports.JournalEntry) error {
	for _, e := range entries {
		if e.ID == "" {
			return ports.ErrConflict
		}
		if _, dup := r.store.ids[e.ID]; dup {
			return ports.ErrConflict
		}
	}
	for _, e := range entries {
		r.store.ids[e.ID] = struct{}{}
	}
	r.store.journal = append(r.store.journal, entries...)
	return nil
}

// List returns the newest matching entries first.
func (r JournalRepo) List(_ context.Context, q ports.JournalQuery) ([]ports.JournalEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []ports.JournalEntry{}
	for i := len(r.store.journal) - 1; i >= 0; i-- {
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
		if e := r.store.journal[i]; q.Matches(e) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	return out, nil
}
