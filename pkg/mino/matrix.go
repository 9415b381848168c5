package mino

import (
	"strings"
)

// Standard playfield dimensions.
const (
	StandardWidth  = 10
	StandardHeight = 20
)

// Matrix is the playfield: a fixed W x H grid of blocks stored row-major,
// row 0 at the top. Its dimensions never change after creation.
type Matrix struct {
	W int // Width
	H int // Height

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewMatrix(w int, h int) *Matrix {
	return &Matrix{W: w, H: h, M: make([]Block, w*h)}
}

// NewStandardMatrix returns an empty 10x20 matrix.
func NewStandardMatrix() *Matrix {
	return NewMatrix(StandardWidth, StandardHeight)
}

func (m *Matrix) Clone() *Matrix {
	c := &Matrix{W: m.W, H: m.H, M: make([]Block, len(m.M))}
	copy(c.M, m.M)

	return c
}

func (m *Matrix) InBounds(x int, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Block returns the block at x,y. Out of bounds coordinates read as empty.
func (m *Matrix) Block(x int, y int) Block {
	if !m.InBounds(x, y) {
		return BlockNone
	}

	return m.M[I(x, y, m.W)]
}

// SetBlock fills an empty in-bounds cell and reports whether it did.
func (m *Matrix) SetBlock(x int, y int, block Block) bool {
	if !m.InBounds(x, y) || m.M[I(x, y, m.W)] != BlockNone {
		return false
	}

	m.M[I(x, y, m.W)] = block

	return true
}

func (m *Matrix) Clear() {
	for i := range m.M {
		m.M[i] = BlockNone
	}
}

// Rows returns a copy of the grid as rows of cell tags, top row first.
func (m *Matrix) Rows() [][]Block {
	rows := make([][]Block, m.H)
	for y := 0; y < m.H; y++ {
		rows[y] = make([]Block, m.W)
		copy(rows[y], m.M[I(0, y, m.W):I(0, y+1, m.W)])
	}

	return rows
}

// IsValid reports whether shape fits with its top-left corner at pos. Cells
// above the matrix (y < 0) are only checked against the side walls, which
// lets pieces enter partially off the top.
func (m *Matrix) IsValid(pos Point, shape Shape) bool {
	for _, p := range shape.Points() {
		c := pos.Add(p)

		if c.X < 0 || c.X >= m.W || c.Y >= m.H {
			return false
		}

		if c.Y >= 0 && m.M[I(c.X, c.Y, m.W)] != BlockNone {
			return false
		}
	}

	return true
}

// Merge returns a copy of the matrix with every occupied cell of shape
// written at pos. Cells that fall outside the matrix are dropped. The
// receiver is not modified.
func (m *Matrix) Merge(pos Point, shape Shape) *Matrix {
	merged := m.Clone()

	for _, p := range shape.Points() {
		c := pos.Add(p)

		if !merged.InBounds(c.X, c.Y) {
			continue
		}

		merged.M[I(c.X, c.Y, merged.W)] = shape[p.Y][p.X]
	}

	return merged
}

func (m *Matrix) LineFilled(y int) bool {
	for x := 0; x < m.W; x++ {
		if m.M[I(x, y, m.W)] == BlockNone {
			return false
		}
	}

	return true
}

// ClearFilled returns a copy of the matrix with every full row removed and
// the same number of empty rows added at the top, along with the number of
// rows removed. Remaining rows keep their relative order.
func (m *Matrix) ClearFilled() (*Matrix, int) {
	cleared := NewMatrix(m.W, m.H)

	dst := m.H - 1
	for y := m.H - 1; y >= 0; y-- {
		if m.LineFilled(y) {
			continue
		}

		copy(cleared.M[I(0, dst, m.W):I(0, dst+1, m.W)], m.M[I(0, y, m.W):I(0, y+1, m.W)])
		dst--
	}

	return cleared, dst + 1
}

// Render draws the matrix with one rune per cell, top row first.
func (m *Matrix) Render() string {
	var b strings.Builder

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			b.WriteRune(m.M[I(x, y, m.W)].Rune())
		}

		if y == m.H-1 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}
