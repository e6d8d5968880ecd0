package buildmode

import (
	"context"
	"errors"
	"time"

	"isocity/internal/app/ports"
	"isocity/internal/domain/building"
	"isocity/internal/domain/city"
	"isocity/internal/domain/placement"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

var (
	ErrUnknownBuildingType = errors.New("unknown building type")
	ErrNotInBuildMode      = errors.New("not in build mode")
)

type UseCase struct {
	TxManager ports.TxManager
	Cities    ports.CityRepository
	Journal   ports.JournalRepository
	Metrics   ports.PlacementMetrics
	Now       func() time.Time
	NewID     func() string
}

func (u UseCase) Enter(ctx context.Context, req EnterRequest) (Response, error) {
	t, err := building.ParseType(req.BuildingType)
	if err != nil {
		return Response{}, ErrUnknownBuildingType
	}

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		if err := u.journal(txCtx, ports.JournalBuildModeEntered, map[string]any{
			"building_type": string(t),
		}); err != nil {
			return err
		}
		c.EnterBuildMode(t)
		out = snapshot(c)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	hlog.CtxInfof(ctx, "build mode on: type=%s", t)
	return out, nil
}

func (u UseCase) Hover(ctx context.Context, req HoverRequest) (Response, error) {
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		c.SetHover(req.Pos)
		out = snapshot(c)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) Preview(ctx context.Context) (Response, error) {
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		out = snapshot(c)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) Cancel(ctx context.Context) (Response, error) {
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		if c.Mode() != placement.ModeOn {
			return ErrNotInBuildMode
		}
		if err := u.journal(txCtx, ports.JournalBuildModeCancelled, map[string]any{
			"building_type": string(c.Session().Type),
		}); err != nil {
			return err
		}
		c.Cancel()
		out = snapshot(c)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordCancelled()
	}
	hlog.CtxInfof(ctx, "build mode off: cancelled")
	return out, nil
}

// Confirm commits the open session. The journal entry is written before the
// city is mutated so that a journal failure leaves the city untouched.
func (u UseCase) Confirm(ctx context.Context) (ConfirmResponse, error) {
	var out ConfirmResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		plan, reason := c.PlanCommit()
		if reason != placement.RejectNone {
			res := c.Confirm()
			if res.Reason == placement.RejectNoSession {
				return ErrNotInBuildMode
			}
			if err := u.journal(txCtx, ports.JournalPlacementRejected, rejectPayload(c, res.Reason)); err != nil {
				return err
			}
			out = confirmSnapshot(c, res)
			return nil
		}

		if err := u.journal(txCtx, ports.JournalBuildingPlaced, map[string]any{
			"building_id":   int64(plan.Building.ID),
			"building_type": string(plan.Building.Type),
			"x":             plan.Building.Anchor.X,
			"y":             plan.Building.Anchor.Y,
			"tiles":         len(plan.Building.Covered),
			"cost":          plan.Cost,
			"gold_before":   c.Ledger.Balance(),
			"gold_after":    c.Ledger.Balance() - plan.Cost,
		}); err != nil {
			return err
		}
		out = confirmSnapshot(c, c.ApplyCommit(plan))
		return nil
	})
	if err != nil {
		return ConfirmResponse{}, err
	}

	if out.Committed {
		if u.Metrics != nil {
			u.Metrics.RecordPlaced(out.Building.Type)
		}
		hlog.CtxInfof(ctx, "building placed: id=%d type=%s anchor=%d,%d gold=%d",
			out.Building.ID, out.Building.Type, out.Building.Anchor.X, out.Building.Anchor.Y, out.Gold)
	} else {
		if u.Metrics != nil {
			u.Metrics.RecordRejected(out.Reason)
		}
		hlog.CtxWarnf(ctx, "placement rejected: reason=%s", out.Reason)
	}
	return out, nil
}

func (u UseCase) journal(ctx context.Context, kind ports.JournalKind, payload map[string]any) error {
	if u.Journal == nil {
		return nil
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return u.Journal.Append(ctx, []ports.JournalEntry{{
		ID:         newID(),
		Kind:       kind,
		OccurredAt: nowFn(),
		Payload:    payload,
	}})
}

func rejectPayload(c *city.City, reason placement.RejectReason) map[string]any {
	payload := map[string]any{
		"reason": string(reason),
		"gold":   c.Ledger.Balance(),
	}
	if s := c.Session(); s != nil {
		payload["building_type"] = string(s.Type)
		if s.Anchor != nil {
			payload["x"] = s.Anchor.X
			payload["y"] = s.Anchor.Y
		}
	}
	return payload
}

func snapshot(c *city.City) Response {
	return Response{
		Mode:    c.Mode(),
		Gold:    c.Ledger.Balance(),
		Preview: c.Preview(),
	}
}

func confirmSnapshot(c *city.City, res placement.CommitResult) ConfirmResponse {
	out := ConfirmResponse{
		Committed: res.Committed,
		Reason:    res.Reason,
		Mode:      c.Mode(),
		Gold:      c.Ledger.Balance(),
		Preview:   c.Preview(),
	}
	if res.Committed {
		b := res.Building
		out.Building = &b
	}
	return out
}
