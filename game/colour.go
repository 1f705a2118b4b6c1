package game

// Colour identifies the contents of a board cell. Empty only ever appears as
// a cell value; a player is always Black or White. The numeric values double
// as the export encoding (0 empty, 1 Black, 2 White).
type Colour uint8

const (
	Empty Colour = iota
	Black
	White
)

// Opponent returns the other player's colour.
func (c Colour) Opponent() Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Colour) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}
