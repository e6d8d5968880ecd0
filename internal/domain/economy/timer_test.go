package economy

import (
	"testing"
	"time"
)

func TestUpkeepTimerFiresOncePerInterval(t *testing.T) {
	timer := NewUpkeepTimer(7 * time.Second)
	fired := 0
	// 60 frames per second for 15 seconds.
	for i := 0; i < 60*15; i++ {
		fired += timer.Advance(time.Second / 60)
	}
	if fired != 2 {
		t.Fatalf("expected 2 intervals in 15s, got %d", fired)
	}

	slow := NewUpkeepTimer(7 * time.Second)
	fired = 0
	for i := 0; i < 14; i++ {
		fired += slow.Advance(time.Second)
	}
	if fired != 2 {
		t.Fatalf("expected 2 intervals at 1fps, got %d", fired)
	}
}

func TestUpkeepTimerSpeedScales(t *testing.T) {
	timer := NewUpkeepTimer(7 * time.Second)
	timer.SetSpeed(SpeedFastest)
	if got := timer.Advance(7 * time.Second); got != 8 {
		t.Fatalf("expected 8 intervals at 8x, got %d", got)
	}
	if timer.Elapsed() != 0 {
		t.Fatalf("expected no remainder, got %s", timer.Elapsed())
	}
}

func TestUpkeepTimerPaused(t *testing.T) {
	timer := NewUpkeepTimer(time.Second)
	timer.SetPaused(true)
	if got := timer.Advance(10 * time.Second); got != 0 {
		t.Fatalf("paused timer fired %d times", got)
	}
	timer.SetPaused(false)
	if got := timer.Advance(1500 * time.Millisecond); got != 1 {
		t.Fatalf("expected 1 interval after resume, got %d", got)
	}
	if timer.Elapsed() != 500*time.Millisecond {
		t.Fatalf("expected 500ms carried over, got %s", timer.Elapsed())
	}
}

func TestParseSpeed(t *testing.T) {
	if s, err := ParseSpeed("Faster"); err != nil || s != SpeedFaster {
		t.Fatalf("ParseSpeed faster got=%q err=%v", s, err)
	}
	if s, err := ParseSpeed(""); err != nil || s != SpeedNormal {
		t.Fatalf("empty speed should default to normal, got=%q err=%v", s, err)
	}
	if _, err := ParseSpeed("ludicrous"); err == nil {
		t.Fatalf("expected error for unknown speed")
	}
}

func TestUpkeepTimerDueDoesNotAdvance(t *testing.T) {
	timer := NewUpkeepTimer(7 * time.Second)
	n, rest := timer.Due(10 * time.Second)
	if n != 1 || rest != 3*time.Second {
		t.Fatalf("expected 1 interval with 3s rest, got %d %s", n, rest)
	}
	if timer.Elapsed() != 0 {
		t.Fatalf("Due must not advance the timer, elapsed=%s", timer.Elapsed())
	}
	timer.Settle(rest)
	if n, _ := timer.Due(4 * time.Second); n != 1 {
		t.Fatalf("expected carried remainder to complete an interval")
	}
}
