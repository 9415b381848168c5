package mino

import "fmt"

// Canonical spawn orientation of each tetromino, top row first.
const (
	TetrominoI = "0000/1111/0000/0000"
	TetrominoJ = "100/111/000"
	TetrominoL = "001/111/000"
	TetrominoO = "11/11"
	TetrominoS = "011/110/000"
	TetrominoT = "010/111/000"
	TetrominoZ = "110/011/000"
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
}

// Block returns the fill tag used by pieces of this type.
func (t PieceType) Block() Block {
	return Block(t) + 1
}

// AllPieces lists the catalog in tag order.
var AllPieces = []PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

var catalog = map[PieceType]Shape{
	PieceI: mustParseShape(TetrominoI, BlockI),
	PieceJ: mustParseShape(TetrominoJ, BlockJ),
	PieceL: mustParseShape(TetrominoL, BlockL),
	PieceO: mustParseShape(TetrominoO, BlockO),
	PieceS: mustParseShape(TetrominoS, BlockS),
	PieceT: mustParseShape(TetrominoT, BlockT),
	PieceZ: mustParseShape(TetrominoZ, BlockZ),
}

// NewTetromino returns an independent copy of the canonical shape of t.
// Rotating or otherwise mutating the result never alters the catalog.
func NewTetromino(t PieceType) Shape {
	s, ok := catalog[t]
	if !ok {
		panic(fmt.Sprintf("unknown piece type %d", int(t)))
	}

	return s.Clone()
}

func mustParseShape(s string, tag Block) Shape {
	shape, err := ParseShape(s, tag)
	if err != nil {
		panic(err)
	}

	return shape
}
