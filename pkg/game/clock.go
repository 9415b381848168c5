package game

import (
	"fmt"
	"time"
)

// Clock is the gravity timer. A stopped clock has a nil channel, so a select
// on C never fires while the game is paused or over. It is owned by the
// goroutine running the game and is not safe for concurrent use.
type Clock struct {
	Interval time.Duration
	Paused   bool

	ticker *time.Ticker
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{
		Interval: interval,
		Paused:   true,
	}
}

func (cl *Clock) String() string {
	if cl.Paused {
		return "paused"
	}

	return fmt.Sprintf("every %s", cl.Interval)
}

// C returns the tick channel, or nil while the clock is paused.
func (cl *Clock) C() <-chan time.Time {
	if cl.Paused || cl.ticker == nil {
		return nil
	}

	return cl.ticker.C
}

// Start runs the clock at interval. A running clock is restarted only when
// the interval changes.
func (cl *Clock) Start(interval time.Duration) {
	if !cl.Paused && cl.Interval == interval {
		return
	}

	cl.Pause()

	cl.Interval = interval
	cl.ticker = time.NewTicker(interval)
	cl.Paused = false
}

// Reset restarts the current interval from zero.
func (cl *Clock) Reset() {
	if cl.Paused {
		return
	}

	cl.ticker.Reset(cl.Interval)
}

func (cl *Clock) Pause() {
	if cl.ticker != nil {
		cl.ticker.Stop()
		cl.ticker = nil
	}

	cl.Paused = true
}
