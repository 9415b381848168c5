package mino

import (
	"fmt"
	"strings"
)

// Shape is a square matrix of blocks describing a piece in its current
// rotation. Non-empty cells make up the piece footprint.
type Shape [][]Block

// ParseShape builds a shape from rows separated by '/'. A '1' marks an
// occupied cell, which is filled with tag, and '0' marks an empty cell.
func ParseShape(s string, tag Block) (Shape, error) {
	rows := strings.Split(s, "/")
	shape := make(Shape, len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("shape %q is not square: row %d has %d cells, want %d", s, y, len(row), len(rows))
		}

		shape[y] = make([]Block, len(row))
		for x, c := range row {
			switch c {
			case '0':
			case '1':
				shape[y][x] = tag
			default:
				return nil, fmt.Errorf("shape %q: invalid cell %q at %s", s, c, Point{x, y})
			}
		}
	}

	return shape, nil
}

// Size returns the side length of the shape.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy, so that mutating the copy never affects s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}

	c := make(Shape, len(s))
	for y := range s {
		c[y] = make([]Block, len(s[y]))
		copy(c[y], s[y])
	}

	return c
}

// Rotate returns the shape turned 90 degrees clockwise: the transpose with
// each row reversed. The receiver is left untouched.
func (s Shape) Rotate() Shape {
	n := len(s)
	rotated := make(Shape, n)
	for i := range rotated {
		rotated[i] = make([]Block, n)
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			rotated[x][n-1-y] = s[y][x]
		}
	}

	return rotated
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}

// Points returns the occupied cells relative to the top-left corner.
func (s Shape) Points() []Point {
	var points []Point
	for y := range s {
		for x, b := range s[y] {
			if b != BlockNone {
				points = append(points, Point{x, y})
			}
		}
	}

	return points
}

// Tag returns the block tag of the piece, or BlockNone for an empty shape.
func (s Shape) Tag() Block {
	for y := range s {
		for _, b := range s[y] {
			if b != BlockNone {
				return b
			}
		}
	}

	return BlockNone
}

func (s Shape) String() string {
	var b strings.Builder
	for y := range s {
		if y > 0 {
			b.WriteRune('/')
		}
		for _, c := range s[y] {
			if c == BlockNone {
				b.WriteRune('0')
			} else {
				b.WriteRune('1')
			}
		}
	}

	return b.String()
}

// Render draws the shape with one rune per cell, top row first.
func (s Shape) Render() string {
	var b strings.Builder
	for y := range s {
		for _, c := range s[y] {
			b.WriteRune(c.Rune())
		}
		if y < len(s)-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}
