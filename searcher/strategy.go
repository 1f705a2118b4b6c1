// Package searcher provides the engine's move-selection strategies: a
// uniform-random picker and a depth-limited minimax search with alpha-beta
// pruning. Strategies act on immutable game states and never mutate shared
// position.
package searcher

import "othello/game"

type kind int

// Exactly two strategies exist; no open plugin surface.
const (
	kindRandom kind = iota
	kindAlphaBeta
)

// Strategy is a tagged choice between the two move-selection policies,
// selected by a single strength parameter at the session boundary.
type Strategy struct {
	kind  kind
	depth int
}

// Random returns the uniform-random strategy.
func Random() Strategy { return Strategy{kind: kindRandom} }

// AlphaBeta returns a minimax strategy searching depth plies. Depth is
// clamped to at least 1.
func AlphaBeta(depth int) Strategy {
	if depth < 1 {
		depth = 1
	}
	return Strategy{kind: kindAlphaBeta, depth: depth}
}

// ForStrength maps a strength parameter onto a strategy: a positive value
// selects alpha-beta at that depth, zero or less selects random.
func ForStrength(strength int) Strategy {
	if strength > 0 {
		return AlphaBeta(strength)
	}
	return Random()
}

// ChooseMove picks a placement for the colour to act in state. The boolean
// is false only when that colour has no legal move; a strategy is never
// asked to choose a pass.
func (s Strategy) ChooseMove(state game.GameState) (game.Move, bool) {
	moves := state.ValidMoves(state.NextTurn)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	if s.kind == kindAlphaBeta {
		return alphaBetaMove(state, moves, s.depth), true
	}
	return randomMove(moves), true
}
