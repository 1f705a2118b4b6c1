package game

// Scores counts the stones of each colour on the board.
func (b Board) Scores() (black, white int) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Evaluate scores a board from perspective's point of view as the signed
// stone differential. This is the leaf heuristic of the alpha-beta search;
// a positional weight table could be substituted without touching callers.
func Evaluate(b Board, perspective Colour) int {
	black, white := b.Scores()
	if perspective == Black {
		return black - white
	}
	return white - black
}
