package ports

import "context"

// TxManager runs fn as one all-or-nothing unit. Implementations serialize
// units that touch the city so that a commit and an upkeep payment never
// interleave.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
