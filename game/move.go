package game

// Move is a stone placement by Player at a 0-indexed board coordinate. A
// move carries no legality of its own: whether it may be played depends on
// the board it targets.
type Move struct {
	Player Colour
	Row    int
	Col    int
}
