package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

const (
	CommandQueueSize = 10
	LogQueueSize     = 10
)

// Game drives an Engine. Actions and gravity ticks are applied by the single
// goroutine executing Run, and every change is published as a Snapshot.
type Game struct {
	ID   string
	Name string
	Seed int64

	// Domain events: *event.LockEvent, *event.LevelEvent, *event.GameOverEvent
	Event chan interface{}

	LogLevel int

	engine *Engine
	clock  *Clock

	actions chan event.GameAction
	draw    chan event.DrawObject
	logger  chan string

	snapshot Snapshot

	*sync.Mutex
}

// NewGame creates a game in the not-started state. A zero seed picks one
// from the current time. logger and draw may be nil.
func NewGame(name string, seed int64, logger chan string, draw chan event.DrawObject) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		ID:      uuid.New().String(),
		Name:    name,
		Seed:    seed,
		Event:   make(chan interface{}, CommandQueueSize),
		engine:  NewEngine(mino.NewGenerator(seed)),
		clock:   NewClock(DropInterval(StartingLevel)),
		actions: make(chan event.GameAction, CommandQueueSize),
		draw:    draw,
		logger:  logger,
		Mutex:   new(sync.Mutex),
	}

	g.publish()

	return g
}

func (g *Game) Log(level int, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	select {
	case g.logger <- fmt.Sprint(a...):
	default:
	}

	g.redraw(event.DrawMessages)
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	g.Log(level, fmt.Sprintf(format, a...))
}

// ProcessAction queues an action for Run. It never blocks: when the queue
// is full the action is dropped and false is returned.
func (g *Game) ProcessAction(a event.GameAction) bool {
	select {
	case g.actions <- a:
		return true
	default:
		g.Log(LogDebug, "Action queue full, dropped ", a)
		return false
	}
}

// Snapshot returns the most recently published state.
func (g *Game) Snapshot() Snapshot {
	g.Lock()
	defer g.Unlock()

	return g.snapshot
}

// Run applies queued actions and gravity ticks until ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.clock.Pause()

	g.Logf(LogDebug, "Game %s ready (seed %d)", g.ID, g.Seed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-g.actions:
			g.handleAction(a)
		case <-g.clock.C():
			g.Log(LogVerbose, "Gravity tick")

			changed, lock := g.engine.SoftDrop()
			g.settle(changed, lock)
		}
	}
}

func (g *Game) handleAction(a event.GameAction) {
	g.Log(LogVerbose, "Action ", a)

	var (
		changed bool
		lock    *LockResult
	)

	switch a {
	case event.ActionMoveLeft:
		changed = g.engine.MoveLeft()
	case event.ActionMoveRight:
		changed = g.engine.MoveRight()
	case event.ActionRotate:
		changed = g.engine.Rotate()
	case event.ActionSoftDrop:
		changed, lock = g.engine.SoftDrop()
	case event.ActionHardDrop:
		changed, lock = g.engine.HardDrop()
	case event.ActionPause:
		changed = g.engine.Pause()
		if changed {
			if g.engine.Paused() {
				g.Log(LogStandard, "Paused")
			} else {
				g.Log(LogStandard, "Resumed")
			}
		}
	case event.ActionStart, event.ActionReset:
		g.engine.Start()
		changed = true

		g.Logf(LogStandard, "New game started (level %d)", g.engine.Level())
	default:
		g.Log(LogDebug, "Ignoring unknown action ", a)
	}

	g.settle(changed, lock)
}

// settle reports a lock, keeps the clock in step with the engine and
// publishes the new state.
func (g *Game) settle(changed bool, lock *LockResult) {
	if lock != nil {
		g.handleLock(lock)
	}

	if g.engine.Playing() {
		g.clock.Start(DropInterval(g.engine.Level()))
		if lock != nil {
			g.clock.Reset()
		}
	} else {
		g.clock.Pause()
	}

	if changed {
		g.publish()
	}
}

func (g *Game) handleLock(lock *LockResult) {
	if lock.Lines > 0 {
		g.emit(&event.LockEvent{
			Event: event.Event{Message: fmt.Sprintf("Cleared %d line%s (+%d)", lock.Lines, plural(lock.Lines), lock.Score)},
			Lines: lock.Lines,
			Score: lock.Score,
		})
	}

	if lock.LevelUp {
		g.emit(&event.LevelEvent{
			Event: event.Event{Message: fmt.Sprintf("Level %d", lock.Level)},
			Level: lock.Level,
		})
	}

	if lock.GameOver {
		g.emit(&event.GameOverEvent{
			Event: event.Event{Message: fmt.Sprintf("Game over! Final score %d", g.engine.Score())},
			Score: g.engine.Score(),
		})
	}
}

func (g *Game) emit(e fmt.Stringer) {
	g.Log(LogStandard, e.String())

	select {
	case g.Event <- e:
	default:
		g.Log(LogDebug, "Event queue full, dropped ", e)
	}
}

func (g *Game) publish() {
	s := g.engine.Snapshot()
	s.GameID = g.ID
	s.Name = g.Name

	g.Lock()
	g.snapshot = s
	g.Unlock()

	g.redraw(event.DrawAll)
}

func (g *Game) redraw(o event.DrawObject) {
	if g.draw == nil {
		return
	}

	select {
	case g.draw <- o:
	default:
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}
