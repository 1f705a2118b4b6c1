package game

// GameState couples a board snapshot with the colour expected to act next.
// It is immutable: Apply and Pass return a new value and leave the receiver
// untouched, which lets search branch over siblings without any rollback
// bookkeeping.
type GameState struct {
	Board    Board
	NextTurn Colour
}

// NewGameState returns the canonical start position, Black to move.
func NewGameState() GameState {
	return GameState{Board: NewBoard(), NextTurn: Black}
}

// IsLegal reports whether colour may place at (row, col): the cell must be
// empty and the placement must capture at least one opposing run.
func (gs GameState) IsLegal(colour Colour, row, col int) bool {
	return len(gs.Board.LinesToCapture(colour, row, col)) > 0
}

// ValidMoves returns every legal placement for colour in row-major order.
// The stable order is what keeps downstream search deterministic.
func (gs GameState) ValidMoves(colour Colour) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if gs.IsLegal(colour, row, col) {
				moves = append(moves, Move{Player: colour, Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMove reports whether colour has at least one legal placement.
func (gs GameState) HasMove(colour Colour) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if gs.IsLegal(colour, row, col) {
				return true
			}
		}
	}
	return false
}

// Apply plays a move and returns the resulting state with captures flipped
// and the turn advanced. The move must be legal in the current position:
// callers obtain moves from ValidMoves or check IsLegal first, Apply does
// not re-validate. Passing is not a move; see Pass.
func (gs GameState) Apply(m Move) GameState {
	captured := gs.Board.LinesToCapture(m.Player, m.Row, m.Col)
	board := gs.Board.Place(m.Row, m.Col, m.Player).WithFlips(captured, m.Player)
	return GameState{Board: board, NextTurn: m.Player.Opponent()}
}

// Pass flips the turn without touching the board. Whether a pass is allowed
// is the orchestrator's decision, not the state's.
func (gs GameState) Pass() GameState {
	return GameState{Board: gs.Board, NextTurn: gs.NextTurn.Opponent()}
}

// GameOver reports whether neither colour has a legal placement. It is
// derived from the position on demand, never cached.
func (gs GameState) GameOver() bool {
	return !gs.HasMove(gs.NextTurn) && !gs.HasMove(gs.NextTurn.Opponent())
}

// Scores counts stones per colour in the current position.
func (gs GameState) Scores() (black, white int) {
	return gs.Board.Scores()
}
