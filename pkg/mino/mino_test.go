package mino

import (
	"strings"
)

// parseMatrix builds a matrix from rows of runes, top row first, where '.'
// is empty and any other rune is filled with BlockO.
func parseMatrix(rows ...string) *Matrix {
	m := NewMatrix(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c != '.' {
				m.M[I(x, y, m.W)] = BlockO
			}
		}
	}

	return m
}

// fillRow fills row y of m except for the columns listed in holes.
func fillRow(m *Matrix, y int, b Block, holes ...int) {
	for x := 0; x < m.W; x++ {
		hole := false
		for _, h := range holes {
			if h == x {
				hole = true
			}
		}

		if !hole {
			m.M[I(x, y, m.W)] = b
		}
	}
}

type seqRandomizer struct {
	values []int
	i      int
}

func (r *seqRandomizer) Intn(n int) int {
	v := r.values[r.i%len(r.values)] % n
	r.i++

	return v
}

var emptyRow = strings.Repeat(".", StandardWidth)
