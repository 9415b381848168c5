package mino

// Block is the tag stored in a matrix cell. BlockNone marks an empty cell,
// every other value is the id of the piece that filled it.
type Block int

const (
	BlockNone Block = iota
	BlockI
	BlockJ
	BlockL
	BlockO
	BlockS
	BlockT
	BlockZ
)

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return '.'
	case BlockI:
		return 'I'
	case BlockJ:
		return 'J'
	case BlockL:
		return 'L'
	case BlockO:
		return 'O'
	case BlockS:
		return 'S'
	case BlockT:
		return 'T'
	case BlockZ:
		return 'Z'
	default:
		return '?'
	}
}

func (b Block) Empty() bool {
	return b == BlockNone
}
