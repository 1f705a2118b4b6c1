// Package engine owns the mutable side of a game. A Session holds the
// current position plus the append-only history of move codes, gates every
// transition behind a legality check, and dispatches AI requests to the
// configured strategy. Everything below the session is immutable.
package engine

import (
	"fmt"
	"strings"

	"othello/game"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Session orchestrates one game. Transitions are atomic: a rejected request
// leaves both the position and the history untouched.
type Session struct {
	state   game.GameState
	history []int
}

// NewSession starts a game from the standard opening position.
func NewSession() *Session {
	return &Session{state: game.NewGameState()}
}

// SubmitMove decodes and applies a move code for the player to act. It
// returns false, with no error, when the placement is illegal or a pass is
// requested while a legal move exists; the caller may retry with another
// code. An out-of-range code is an error, not an illegal move.
func (s *Session) SubmitMove(code int) (bool, error) {
	player := s.state.NextTurn
	move, isPlacement, err := DecodeMove(code, player)
	if err != nil {
		return false, err
	}

	if !isPlacement {
		// Pass is legal only when the player has nothing to play.
		if s.state.HasMove(player) {
			return false, nil
		}
		s.state = s.state.Pass()
		s.history = append(s.history, PassCode)
		log.Debug().Msgf("%s passes", player)
		return true, nil
	}

	if !s.state.IsLegal(player, move.Row, move.Col) {
		return false, nil
	}
	s.state = s.state.Apply(move)
	s.history = append(s.history, code)
	log.Debug().Msgf("%s plays (%d,%d)", player, move.Row, move.Col)
	return true, nil
}

// RequestAIMove has a strategy act for the current player and returns the
// applied move code. A positive strength searches that many plies with
// alpha-beta; zero or less plays uniformly at random. When the player has no
// legal move the session performs the forced pass itself, records it, and
// reports ok=false only when the opponent is also stuck, i.e. the game is
// over. An error means the strategy misbehaved, not that the caller did.
func (s *Session) RequestAIMove(strength int) (code int, ok bool, err error) {
	player := s.state.NextTurn
	if !s.state.HasMove(player) {
		s.state = s.state.Pass()
		s.history = append(s.history, PassCode)
		if !s.state.HasMove(s.state.NextTurn) {
			log.Debug().Msgf("%s passes, game over", player)
			return 0, false, nil
		}
		log.Debug().Msgf("%s passes", player)
		return PassCode, true, nil
	}

	move, found := searcher.ForStrength(strength).ChooseMove(s.state)
	if !found {
		return 0, false, errors.Errorf("strategy returned no move for %s despite legal moves", player)
	}
	if !s.state.IsLegal(player, move.Row, move.Col) {
		return 0, false, errors.Errorf("strategy chose illegal move (%d,%d) for %s", move.Row, move.Col, player)
	}

	code = EncodeMove(move)
	s.state = s.state.Apply(move)
	s.history = append(s.history, code)
	log.Debug().Msgf("%s plays (%d,%d) at strength %d", player, move.Row, move.Col, strength)
	return code, true, nil
}

// BoardSnapshot exports the 64 cells in row-major order: 0 empty, 1 Black,
// 2 White.
func (s *Session) BoardSnapshot() []uint8 {
	cells := make([]uint8, 0, game.BoardSize*game.BoardSize)
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			cells = append(cells, uint8(s.state.Board.Get(row, col)))
		}
	}
	return cells
}

// Scores returns the current stone counts as (black, white).
func (s *Session) Scores() (black, white int) {
	return s.state.Scores()
}

// NextPlayer returns the colour expected to act next.
func (s *Session) NextPlayer() game.Colour {
	return s.state.NextTurn
}

// GameOver reports whether neither colour has a legal move. The terminal
// condition is recomputed per call, never cached.
func (s *Session) GameOver() bool {
	return s.state.GameOver()
}

// History returns a copy of the move codes played so far; 0 marks a pass.
func (s *Session) History() []int {
	out := make([]int, len(s.history))
	copy(out, s.history)
	return out
}

// State returns the current position.
func (s *Session) State() game.GameState {
	return s.state
}

// String renders the board with a score and turn summary.
func (s *Session) String() string {
	var sb strings.Builder
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			switch s.state.Board.Get(row, col) {
			case game.Black:
				sb.WriteByte('B')
			case game.White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	black, white := s.state.Scores()
	fmt.Fprintf(&sb, "Score: B %d - W %d\n", black, white)
	fmt.Fprintf(&sb, "Next Turn: %s\n", s.state.NextTurn)
	return sb.String()
}
