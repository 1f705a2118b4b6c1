package game

// BoardSize is the side length of the board.
const BoardSize = 8

// directions enumerates the 8 compass directions of a capture scan.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 Othello board. It is a value type: every update returns a
// new Board and leaves the receiver untouched, so positions derived during
// search share nothing with their parent.
type Board [BoardSize][BoardSize]Colour

// NewBoard returns a board holding the four standard starting stones.
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Get returns the cell at (row, col).
func (b Board) Get(row, col int) Colour {
	return b[row][col]
}

// Place returns a new board with colour placed at (row, col).
func (b Board) Place(row, col int, colour Colour) Board {
	b[row][col] = colour
	return b
}

// WithFlips returns a new board with every listed cell set to colour.
func (b Board) WithFlips(cells [][2]int, colour Colour) Board {
	for _, cell := range cells {
		b[cell[0]][cell[1]] = colour
	}
	return b
}

// LinesToCapture returns every opposing stone flipped by colour playing at
// (row, col). A direction contributes only when it holds an unbroken run of
// opponent stones closed off by one of colour's own stones; a run that hits
// an empty cell or the board edge first contributes nothing. The target cell
// must be empty. An empty result means the placement is illegal.
func (b Board) LinesToCapture(colour Colour, row, col int) [][2]int {
	if b[row][col] != Empty {
		return nil
	}
	opponent := colour.Opponent()
	var captured [][2]int
	for _, dir := range directions {
		var run [][2]int
		r, c := row+dir[0], col+dir[1]
		for inBounds(r, c) && b[r][c] == opponent {
			run = append(run, [2]int{r, c})
			r, c = r+dir[0], c+dir[1]
		}
		if len(run) > 0 && inBounds(r, c) && b[r][c] == colour {
			captured = append(captured, run...)
		}
	}
	return captured
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
