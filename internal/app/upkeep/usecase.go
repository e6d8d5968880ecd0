package upkeep

import (
	"context"
	"errors"
	"time"

	"isocity/internal/app/ports"
	"isocity/internal/domain/city"
	"isocity/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid time request")

type UseCase struct {
	TxManager ports.TxManager
	Cities    ports.CityRepository
	Journal   ports.JournalRepository
	Metrics   ports.PlacementMetrics
	Now       func() time.Time
	NewID     func() string
}

type Result struct {
	Intervals int          `json:"intervals"`
	Paid      economy.Gold `json:"paid"`
	Gold      economy.Gold `json:"gold"`
}

type TimeRequest struct {
	Paused *bool
	Speed  string
}

type TimeState struct {
	Paused          bool          `json:"paused"`
	Speed           economy.Speed `json:"speed"`
	IntervalSeconds float64       `json:"interval_seconds"`
	ElapsedSeconds  float64       `json:"elapsed_seconds"`
}

// Advance feeds dt of real time into the upkeep timer and pays for every
// interval that completed. It is driven by the host's tick loop.
func (u UseCase) Advance(ctx context.Context, dt time.Duration) (Result, error) {
	var out Result
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		due := c.DueUpkeep(dt)
		if due.Intervals > 0 {
			if err := u.journal(txCtx, ports.JournalUpkeepPaid, map[string]any{
				"intervals":   due.Intervals,
				"occupation":  due.Occupation,
				"rate":        c.UpkeepRate,
				"paid":        due.Paid,
				"gold_before": due.Balance,
				"gold_after":  due.Balance - due.Paid,
			}); err != nil {
				return err
			}
		}
		paid := c.PayUpkeep(due)
		out = Result{Intervals: paid.Intervals, Paid: paid.Paid, Gold: paid.Balance}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if out.Intervals > 0 {
		if u.Metrics != nil {
			u.Metrics.RecordUpkeep(out.Paid)
		}
		hlog.CtxInfof(ctx, "upkeep paid: intervals=%d amount=%d gold=%d", out.Intervals, out.Paid, out.Gold)
		if out.Gold < 0 {
			hlog.CtxWarnf(ctx, "treasury below zero: gold=%d", out.Gold)
		}
	}
	return out, nil
}

func (u UseCase) SetTime(ctx context.Context, req TimeRequest) (TimeState, error) {
	if req.Paused == nil && req.Speed == "" {
		return TimeState{}, ErrInvalidRequest
	}
	var speed economy.Speed
	if req.Speed != "" {
		s, err := economy.ParseSpeed(req.Speed)
		if err != nil {
			return TimeState{}, ErrInvalidRequest
		}
		speed = s
	}

	var out TimeState
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Cities.Current(txCtx)
		if err != nil {
			return err
		}
		if speed != "" {
			c.Upkeep.SetSpeed(speed)
		}
		if req.Paused != nil {
			c.Upkeep.SetPaused(*req.Paused)
		}
		out = timeState(c)
		return u.journal(txCtx, ports.JournalTimeChanged, map[string]any{
			"paused": out.Paused,
			"speed":  string(out.Speed),
		})
	})
	if err != nil {
		return TimeState{}, err
	}
	hlog.CtxInfof(ctx, "game time: paused=%v speed=%s", out.Paused, out.Speed)
	return out, nil
}

func timeState(c *city.City) TimeState {
	return TimeState{
		Paused:          c.Upkeep.Paused(),
		Speed:           c.Upkeep.Speed(),
		IntervalSeconds: c.Upkeep.Interval().Seconds(),
		ElapsedSeconds:  c.Upkeep.Elapsed().Seconds(),
	}
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
