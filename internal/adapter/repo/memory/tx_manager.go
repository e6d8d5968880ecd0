package memory

import (
	"context"

	"isocity/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type TxManager struct {
	store *Store
	inner ports.TxManager
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// WithInner nests a database transaction inside the city lock. A journal
// write that fails rolls back before fn mutates the city. A failure at the
// inner COMMIT arrives after fn has returned, so the city keeps the mutation
// and the journal loses its row; RunInTx logs that divergence.
func (t TxManager) WithInner(inner ports.TxManager) TxManager {
	t.inner = inner
	return t
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.inner == nil {
		return fn(ctx)
	}
	applied := false
	err := t.inner.RunInTx(ctx, func(txCtx context.Context) error {
		if err := fn(txCtx); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil && applied {
		hlog.CtxErrorf(ctx, "inner commit failed after city mutation, journal is missing entries: %v", err)
	}
	return err
}
