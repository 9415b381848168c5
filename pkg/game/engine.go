package game

import (
	"time"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// LockResult describes what happened when a piece locked into the matrix.
type LockResult struct {
	Lines    int // Rows cleared by this lock
	Score    int // Score awarded by this lock
	Level    int // Level after the lock
	LevelUp  bool
	GameOver bool // The following piece could not spawn
}

// Engine holds the complete state of one game and applies the rules to it.
// It has no internal concurrency: callers must serialize access, which Game
// does by driving it from a single goroutine.
type Engine struct {
	matrix   *mino.Matrix
	piece    mino.Shape
	position mino.Point
	next     mino.Shape

	score int
	level int
	lines int

	gameOver bool
	paused   bool

	gen *mino.Generator
}

// NewEngine returns an engine in the not-started state: game over with no
// active piece, waiting for Start.
func NewEngine(gen *mino.Generator) *Engine {
	return &Engine{
		matrix:   mino.NewStandardMatrix(),
		level:    StartingLevel,
		gameOver: true,
		gen:      gen,
	}
}

// SpawnPoint is where new pieces appear on a matrix of width w.
func SpawnPoint(w int) mino.Point {
	return mino.Point{X: w/2 - 1, Y: 0}
}

// Queries return copies, so callers may keep or modify the results.
func (e *Engine) Matrix() *mino.Matrix { return e.matrix.Clone() }
func (e *Engine) Piece() mino.Shape    { return e.piece.Clone() }
func (e *Engine) Position() mino.Point { return e.position }
func (e *Engine) Next() mino.Shape     { return e.next.Clone() }
func (e *Engine) Score() int           { return e.score }
func (e *Engine) Level() int           { return e.level }
func (e *Engine) Lines() int           { return e.lines }
func (e *Engine) GameOver() bool       { return e.gameOver }
func (e *Engine) Paused() bool         { return e.paused }

// Playing reports whether gravity and movement currently apply.
func (e *Engine) Playing() bool {
	return !e.gameOver && !e.paused && e.piece != nil
}

// IsValidMove reports whether shape fits at pos on the current matrix.
func (e *Engine) IsValidMove(pos mino.Point, shape mino.Shape) bool {
	return e.matrix.IsValid(pos, shape)
}

// WouldCollide reports whether moving the active piece by dx,dy would put
// it in an invalid position. It is true when there is no active piece.
func (e *Engine) WouldCollide(dx int, dy int) bool {
	if e.piece == nil {
		return true
	}

	return !e.matrix.IsValid(mino.Point{X: e.position.X + dx, Y: e.position.Y + dy}, e.piece)
}

// Start clears the matrix and begins a new game.
func (e *Engine) Start() {
	e.matrix.Clear()
	e.piece = e.gen.Next()
	e.next = e.gen.Next()
	e.position = SpawnPoint(e.matrix.W)
	e.score = 0
	e.level = StartingLevel
	e.lines = 0
	e.gameOver = false
	e.paused = false
}

// Reset is Start regardless of the current status.
func (e *Engine) Reset() {
	e.Start()
}

// Pause toggles the paused flag. It does nothing once the game is over or
// before a piece is in play.
func (e *Engine) Pause() bool {
	if e.gameOver || e.piece == nil {
		return false
	}

	e.paused = !e.paused

	return true
}

// MoveLeft shifts the active piece one column left when it fits.
func (e *Engine) MoveLeft() bool {
	return e.move(-1, 0)
}

// MoveRight shifts the active piece one column right when it fits.
func (e *Engine) MoveRight() bool {
	return e.move(1, 0)
}

func (e *Engine) move(x int, y int) bool {
	if !e.Playing() {
		return false
	}

	pos := mino.Point{X: e.position.X + x, Y: e.position.Y + y}
	if !e.matrix.IsValid(pos, e.piece) {
		return false
	}

	e.position = pos

	return true
}

// Rotate turns the active piece clockwise in place. The rotation is
// rejected when it does not fit at the current position.
func (e *Engine) Rotate() bool {
	if !e.Playing() {
		return false
	}

	rotated := e.piece.Rotate()
	if !e.matrix.IsValid(e.position, rotated) {
		return false
	}

	e.piece = rotated

	return true
}

// SoftDrop lowers the active piece by one row, or locks it when it cannot
// move down. The lock result is nil when the piece only moved.
func (e *Engine) SoftDrop() (bool, *LockResult) {
	if !e.Playing() {
		return false, nil
	}

	if e.move(0, 1) {
		return true, nil
	}

	return true, e.lock()
}

// HardDrop moves the active piece to the lowest row it can reach and locks
// it there.
func (e *Engine) HardDrop() (bool, *LockResult) {
	if !e.Playing() {
		return false, nil
	}

	y := e.position.Y
	for e.matrix.IsValid(mino.Point{X: e.position.X, Y: y + 1}, e.piece) {
		y++
	}
	e.position.Y = y

	return true, e.lock()
}

// lock merges the active piece, clears full rows, scores them and spawns the
// next piece. The matrix and score are committed even when the spawn fails.
func (e *Engine) lock() *LockResult {
	merged := e.matrix.Merge(e.position, e.piece)
	cleared, lines := merged.ClearFilled()

	previousLevel := e.level

	e.matrix = cleared
	e.lines += lines
	e.score += ScoreForLines(lines)
	e.level = LevelForScore(e.score)

	result := &LockResult{
		Lines:   lines,
		Score:   ScoreForLines(lines),
		Level:   e.level,
		LevelUp: e.level > previousLevel,
	}

	next := e.next
	if next == nil {
		next = e.gen.Next()
	}

	e.piece = next
	e.position = SpawnPoint(e.matrix.W)
	e.next = e.gen.Next()

	if !e.matrix.IsValid(e.position, e.piece) {
		e.gameOver = true
		result.GameOver = true
	}

	return result
}

// Snapshot returns a deep copy of the state for renderers.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Matrix:       e.matrix.Clone(),
		Piece:        e.piece.Clone(),
		Position:     e.position,
		Next:         e.next.Clone(),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		GameOver:     e.gameOver,
		Paused:       e.paused,
		DropInterval: DropInterval(e.level),
	}
}

// Snapshot is a read-only copy of a game's state.
type Snapshot struct {
	GameID string
	Name   string

	Matrix   *mino.Matrix
	Piece    mino.Shape
	Position mino.Point
	Next     mino.Shape

	Score int
	Level int
	Lines int

	GameOver bool
	Paused   bool

	DropInterval time.Duration
}

// Started reports whether a game has been started at least once.
func (s Snapshot) Started() bool {
	return s.Piece != nil
}

// Display returns the matrix with the active piece drawn over it. Piece
// cells outside the matrix are skipped. Once the game is over the piece
// that failed to spawn is not drawn.
func (s Snapshot) Display() *mino.Matrix {
	if s.Matrix == nil {
		return mino.NewStandardMatrix()
	}
	if s.Piece == nil || s.GameOver {
		return s.Matrix.Clone()
	}

	return s.Matrix.Merge(s.Position, s.Piece)
}
