package searcher

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

// randomMove selects uniformly among the given legal moves.
func randomMove(moves []game.Move) game.Move {
	return moves[rand.Intn(len(moves))]
}
