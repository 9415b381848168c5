package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// fixedRandomizer always picks the same index from the catalog.
type fixedRandomizer int

func (r fixedRandomizer) Intn(n int) int {
	return int(r) % n
}

func newTestEngine(t mino.PieceType) *Engine {
	return NewEngine(mino.NewGeneratorFrom(fixedRandomizer(t)))
}

func fillRow(m *mino.Matrix, y int, holes ...int) {
	for x := 0; x < m.W; x++ {
		m.M[mino.I(x, y, m.W)] = mino.BlockJ
	}
	for _, x := range holes {
		m.M[mino.I(x, y, m.W)] = mino.BlockNone
	}
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(mino.PieceO)

	assert.True(t, e.GameOver())
	assert.False(t, e.Paused())
	assert.False(t, e.Playing())
	assert.Nil(t, e.Piece())
	assert.Nil(t, e.Next())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, StartingLevel, e.Level())
	assert.Equal(t, mino.NewStandardMatrix(), e.Matrix())

	assert.False(t, e.MoveLeft())
	assert.False(t, e.Pause())

	changed, lock := e.HardDrop()
	assert.False(t, changed)
	assert.Nil(t, lock)
}

func TestStart(t *testing.T) {
	e := newTestEngine(mino.PieceT)
	e.Start()

	assert.False(t, e.GameOver())
	assert.False(t, e.Paused())
	assert.True(t, e.Playing())
	assert.Equal(t, mino.Point{X: 4, Y: 0}, e.Position())
	assert.True(t, e.Piece().Equal(mino.NewTetromino(mino.PieceT)))
	assert.True(t, e.Next().Equal(mino.NewTetromino(mino.PieceT)))
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Level())
}

func TestStartClearsPreviousGame(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	e.HardDrop()
	e.score = 2500
	e.level = 3
	e.Pause()

	e.Reset()

	assert.Equal(t, mino.NewStandardMatrix(), e.Matrix())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 0, e.Lines())
	assert.False(t, e.Paused())
	assert.False(t, e.GameOver())
}

func TestSpawnPoint(t *testing.T) {
	assert.Equal(t, mino.Point{X: 4, Y: 0}, SpawnPoint(mino.StandardWidth))
}

func TestMoveLeftToWall(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	for i := 0; i < 4; i++ {
		require.True(t, e.MoveLeft(), "move %d", i)
	}
	assert.Equal(t, mino.Point{X: 0, Y: 0}, e.Position())

	assert.False(t, e.MoveLeft())
	assert.Equal(t, mino.Point{X: 0, Y: 0}, e.Position())
}

func TestMoveRightToWall(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	for i := 0; i < 4; i++ {
		require.True(t, e.MoveRight(), "move %d", i)
	}
	assert.Equal(t, mino.Point{X: 8, Y: 0}, e.Position())
	assert.False(t, e.MoveRight())
}

func TestMoveBlockedByStack(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	e.matrix.M[mino.I(3, 1, e.matrix.W)] = mino.BlockZ

	assert.False(t, e.MoveLeft())
	assert.Equal(t, 4, e.Position().X)
}

func TestRotate(t *testing.T) {
	e := newTestEngine(mino.PieceT)
	e.Start()

	require.True(t, e.Rotate())
	assert.True(t, e.Piece().Equal(mino.NewTetromino(mino.PieceT).Rotate()))
	assert.Equal(t, mino.Point{X: 4, Y: 0}, e.Position())
}

func TestRotateRejected(t *testing.T) {
	e := newTestEngine(mino.PieceI)
	e.Start()

	// The vertical I would occupy column 6, rows 0-3.
	e.matrix.M[mino.I(6, 3, e.matrix.W)] = mino.BlockZ

	before := e.Piece()
	assert.False(t, e.Rotate())
	assert.True(t, e.Piece().Equal(before))
}

func TestWouldCollide(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	assert.True(t, e.WouldCollide(0, 1))

	e.Start()
	assert.False(t, e.WouldCollide(0, 1))
	assert.False(t, e.WouldCollide(-4, 0))
	assert.True(t, e.WouldCollide(-5, 0))
	assert.True(t, e.WouldCollide(0, 19))

	e.matrix.M[mino.I(4, 2, e.matrix.W)] = mino.BlockS
	assert.True(t, e.WouldCollide(0, 1))
	assert.True(t, e.IsValidMove(e.Position(), e.Piece()))
}

func TestSoftDrop(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	changed, lock := e.SoftDrop()
	assert.True(t, changed)
	assert.Nil(t, lock)
	assert.Equal(t, mino.Point{X: 4, Y: 1}, e.Position())

	for i := 0; i < 17; i++ {
		_, lock = e.SoftDrop()
		require.Nil(t, lock)
	}
	assert.Equal(t, 18, e.Position().Y)

	changed, lock = e.SoftDrop()
	assert.True(t, changed)
	require.NotNil(t, lock)
	assert.Equal(t, 0, lock.Lines)
	assert.False(t, lock.GameOver)

	assert.Equal(t, mino.BlockO, e.matrix.Block(4, 18))
	assert.Equal(t, mino.BlockO, e.matrix.Block(5, 19))
	assert.Equal(t, mino.Point{X: 4, Y: 0}, e.Position())
}

func TestHardDrop(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	changed, lock := e.HardDrop()
	assert.True(t, changed)
	require.NotNil(t, lock)
	assert.Equal(t, &LockResult{Level: 1}, lock)

	m := e.Matrix()
	for _, p := range []mino.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, mino.BlockO, m.Block(p.X, p.Y), p.String())
	}
	assert.Equal(t, mino.Point{X: 4, Y: 0}, e.Position())
	assert.True(t, e.Piece().Equal(mino.NewTetromino(mino.PieceO)))
}

func TestLockClearsSingleLine(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	fillRow(e.matrix, 19, 4, 5)

	_, lock := e.HardDrop()
	require.NotNil(t, lock)
	assert.Equal(t, 1, lock.Lines)
	assert.Equal(t, ScoreSingle, lock.Score)
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, 1, e.Lines())

	// The top half of the O falls into the cleared row.
	m := e.Matrix()
	for x := 0; x < m.W; x++ {
		if x == 4 || x == 5 {
			assert.Equal(t, mino.BlockO, m.Block(x, 19))
		} else {
			assert.True(t, m.Block(x, 19).Empty(), "x=%d", x)
		}
		assert.True(t, m.Block(x, 18).Empty(), "x=%d", x)
	}
}

func TestLockClearsTwoLines(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	fillRow(e.matrix, 18, 4, 5)
	fillRow(e.matrix, 19, 4, 5)

	_, lock := e.HardDrop()
	require.NotNil(t, lock)
	assert.Equal(t, 2, lock.Lines)
	assert.Equal(t, 300, e.Score())

	m := e.Matrix()
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			assert.True(t, m.Block(x, y).Empty())
		}
	}
}

func TestLockOntoStack(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	// A full row except column 0, so it never clears.
	fillRow(e.matrix, 19, 0)
	before := e.Matrix()

	_, lock := e.HardDrop()
	require.NotNil(t, lock)
	assert.Equal(t, 0, lock.Lines)
	assert.False(t, lock.GameOver)

	m := e.Matrix()
	for _, p := range []mino.Point{{X: 4, Y: 17}, {X: 5, Y: 17}, {X: 4, Y: 18}, {X: 5, Y: 18}} {
		assert.Equal(t, mino.BlockO, m.Block(p.X, p.Y), p.String())
	}
	for x := 0; x < m.W; x++ {
		assert.Equal(t, before.Block(x, 19), m.Block(x, 19), "x=%d", x)
	}
	assert.Equal(t, 0, e.Score())
}

func TestLockLevelUp(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	e.score = 900
	fillRow(e.matrix, 19, 4, 5)

	_, lock := e.HardDrop()
	require.NotNil(t, lock)
	assert.True(t, lock.LevelUp)
	assert.Equal(t, 2, lock.Level)
	assert.Equal(t, 1000, e.Score())
	assert.Equal(t, 2, e.Level())
}

func TestGameOver(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	// A stack right under the spawn area, with a hole so it never clears.
	fillRow(e.matrix, 2, 0)

	_, lock := e.HardDrop()
	require.NotNil(t, lock)
	assert.True(t, lock.GameOver)
	assert.True(t, e.GameOver())
	assert.False(t, e.Playing())

	// The locked piece and score are kept.
	assert.Equal(t, mino.BlockO, e.matrix.Block(4, 0))
	assert.Equal(t, 0, e.Score())

	before := e.Matrix()
	assert.False(t, e.MoveLeft())
	assert.False(t, e.Rotate())
	assert.False(t, e.Pause())
	changed, lock := e.SoftDrop()
	assert.False(t, changed)
	assert.Nil(t, lock)
	assert.Equal(t, before, e.Matrix())

	e.Start()
	assert.False(t, e.GameOver())
	assert.Equal(t, mino.NewStandardMatrix(), e.Matrix())
}

func TestSnapshotDisplayAfterGameOver(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	fillRow(e.matrix, 2, 0)
	e.matrix.M[mino.I(4, 1, e.matrix.W)] = mino.BlockZ
	e.position.Y = -1

	_, lock := e.HardDrop()
	require.NotNil(t, lock)
	require.True(t, lock.GameOver)

	s := e.Snapshot()
	assert.Equal(t, e.Matrix(), s.Display())
	assert.Equal(t, mino.BlockZ, s.Display().Block(4, 1))
}

func TestPause(t *testing.T) {
	e := newTestEngine(mino.PieceO)
	e.Start()

	require.True(t, e.Pause())
	assert.True(t, e.Paused())
	assert.False(t, e.Playing())

	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())
	assert.False(t, e.Rotate())
	changed, _ := e.SoftDrop()
	assert.False(t, changed)
	changed, _ = e.HardDrop()
	assert.False(t, changed)
	assert.Equal(t, mino.Point{X: 4, Y: 0}, e.Position())

	require.True(t, e.Pause())
	assert.False(t, e.Paused())
	assert.True(t, e.MoveLeft())
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(mino.PieceO)

	s := e.Snapshot()
	assert.False(t, s.Started())
	assert.Equal(t, mino.NewStandardMatrix(), s.Display())

	e.Start()
	e.SoftDrop()

	s = e.Snapshot()
	assert.True(t, s.Started())
	assert.Equal(t, mino.Point{X: 4, Y: 1}, s.Position)
	assert.Equal(t, DropInterval(1), s.DropInterval)

	d := s.Display()
	assert.Equal(t, mino.BlockO, d.Block(4, 1))
	assert.Equal(t, mino.BlockO, d.Block(5, 2))
	assert.True(t, s.Matrix.Block(4, 1).Empty())

	// Snapshots do not share memory with the engine.
	s.Matrix.M[0] = mino.BlockZ
	s.Piece[0][0] = mino.BlockNone
	assert.True(t, e.matrix.Block(0, 0).Empty())
	assert.Equal(t, mino.BlockO, e.piece[0][0])
}
