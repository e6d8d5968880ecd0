package economy

import (
	"errors"
	"strings"
	"time"
)

type Speed string

const (
	SpeedNormal  Speed = "normal"
	SpeedFast    Speed = "fast"
	SpeedFaster  Speed = "faster"
	SpeedFastest Speed = "fastest"
)

var ErrUnknownSpeed = errors.New("unknown game speed")

func ParseSpeed(raw string) (Speed, error) {
	s := Speed(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case SpeedNormal, SpeedFast, SpeedFaster, SpeedFastest:
		return s, nil
	case "":
		return SpeedNormal, nil
	default:
		return "", ErrUnknownSpeed
	}
}

func (s Speed) Multiplier() time.Duration {
	switch s {
	case SpeedFast:
		return 2
	case SpeedFaster:
		return 4
	case SpeedFastest:
		return 8
	default:
		return 1
	}
}

// UpkeepTimer accumulates game time and reports how many whole intervals
// have completed. Real elapsed time is scaled by Speed; paused timers do not
// accumulate.
type UpkeepTimer struct {
	interval time.Duration
	elapsed  time.Duration
	speed    Speed
	paused   bool
}

func NewUpkeepTimer(interval time.Duration) *UpkeepTimer {
	if interval <= 0 {
		interval = DefaultUpkeepInterval
	}
	return &UpkeepTimer{interval: interval, speed: SpeedNormal}
}

func (t *UpkeepTimer) Interval() time.Duration { return t.interval }
func (t *UpkeepTimer) Elapsed() time.Duration  { return t.elapsed }
func (t *UpkeepTimer) Speed() Speed            { return t.speed }
func (t *UpkeepTimer) Paused() bool            { return t.paused }

func (t *UpkeepTimer) SetSpeed(s Speed) { t.speed = s }
func (t *UpkeepTimer) SetPaused(p bool) { t.paused = p }

// Due reports how many intervals dt would complete and the time left over
// afterwards, without advancing the timer.
func (t *UpkeepTimer) Due(dt time.Duration) (int, time.Duration) {
	if t.paused || dt <= 0 {
		return 0, t.elapsed
	}
	elapsed := t.elapsed + dt*t.speed.Multiplier()
	n := int(elapsed / t.interval)
	return n, elapsed - time.Duration(n)*t.interval
}

// Settle stores the remainder returned by Due.
func (t *UpkeepTimer) Settle(rest time.Duration) {
	t.elapsed = rest
}

func (t *UpkeepTimer) Advance(dt time.Duration) int {
	n, rest := t.Due(dt)
	t.Settle(rest)
	return n
}
