package searcher

import "othello/game"

// infiniteScore bounds every reachable evaluation; stone differentials stay
// within ±64.
const infiniteScore = 1 << 20

// alphaBetaMove evaluates each candidate with a depth-limited minimax and
// keeps the first candidate, in row-major order, with the strictly greatest
// score. The first-wins tie-break is what makes play reproducible.
func alphaBetaMove(state game.GameState, moves []game.Move, depth int) game.Move {
	root := state.NextTurn
	best := moves[0]
	bestScore := -infiniteScore
	for _, mv := range moves {
		score := minimax(state.Apply(mv), depth-1, -infiniteScore, infiniteScore, root)
		if score > bestScore {
			best, bestScore = mv, score
		}
	}
	return best
}

// minimax is fixed-depth alpha-beta over GameState.Apply, maximizing when
// the colour to move is root. A forced pass is a ply of its own: it flips
// the turn with the board unchanged and still consumes depth. Pruning never
// changes the returned value, only how many siblings get visited.
func minimax(state game.GameState, depth, alpha, beta int, root game.Colour) int {
	if depth == 0 || state.GameOver() {
		return game.Evaluate(state.Board, root)
	}
	moves := state.ValidMoves(state.NextTurn)
	if len(moves) == 0 {
		return minimax(state.Pass(), depth-1, alpha, beta, root)
	}

	if state.NextTurn == root {
		best := -infiniteScore
		for _, mv := range moves {
			score := minimax(state.Apply(mv), depth-1, alpha, beta, root)
			if score > best {
				best = score
			}
			if best >= beta {
				break
			}
			if best > alpha {
				alpha = best
			}
		}
		return best
	}

	best := infiniteScore
	for _, mv := range moves {
		score := minimax(state.Apply(mv), depth-1, alpha, beta, root)
		if score < best {
			best = score
		}
		if best <= alpha {
			break
		}
		if best < beta {
			beta = best
		}
	}
	return best
}
