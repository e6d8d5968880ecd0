package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"isocity/internal/app/ports"
	"isocity/internal/domain/economy"
)

var ErrInvalidRequest = errors.New("invalid journal request")

const MaxLimit = 500

type UseCase struct {
	Journal ports.JournalRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || req.Limit > MaxLimit {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	entries, err := u.Journal.List(ctx, query(req))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{Entries: []ports.JournalEntry{}}, nil
		}
		return Response{}, err
	}
	return Response{Entries: entries, LatestGold: latestGold(entries)}, nil
}

// query maps the request onto the repository filter. OccurredFrom and
// OccurredTo are unix seconds and both inclusive.
func query(req Request) ports.JournalQuery {
	q := ports.JournalQuery{
		Limit: req.Limit,
		Kind:  ports.JournalKind(strings.TrimSpace(req.Kind)),
	}
	if req.OccurredFrom > 0 {
		q.Since = time.Unix(req.OccurredFrom, 0)
	}
	if req.OccurredTo > 0 {
		q.Until = time.Unix(req.OccurredTo+1, 0)
	}
	return q
}

// latestGold finds the most recent balance recorded by a gold-moving entry.
// Entries are newest first.
func latestGold(entries []ports.JournalEntry) *economy.Gold {
	for _, e := range entries {
		v, ok := e.Payload["gold_after"]
		if !ok {
			continue
		}
		g := economy.Gold(num(v))
		return &g
	}
	return nil
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
