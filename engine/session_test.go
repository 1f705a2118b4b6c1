package engine

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

// whiteStuckState is a position where White has no legal placement while
// Black can still play (3,5) or (5,5).
func whiteStuckState(next game.Colour) game.GameState {
	var b game.Board
	b[0][0], b[3][6], b[5][6] = game.White, game.White, game.White
	b[2][2], b[3][7], b[5][7] = game.Black, game.Black, game.Black
	return game.GameState{Board: b, NextTurn: next}
}

func deadState(next game.Colour) game.GameState {
	var b game.Board
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			b[row][col] = game.Black
		}
	}
	return game.GameState{Board: b, NextTurn: next}
}

func TestNewSession(t *testing.T) {
	s := NewSession()

	black, white := s.Scores()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
	require.Equal(t, game.Black, s.NextPlayer())
	require.False(t, s.GameOver())
	require.Empty(t, s.History())
}

func TestSubmitMove(t *testing.T) {
	t.Run("standard opening via code 20", func(t *testing.T) {
		s := NewSession()

		applied, err := s.SubmitMove(20) // (2,3)
		require.NoError(t, err)
		require.True(t, applied)

		black, white := s.Scores()
		require.Equal(t, 4, black, "Black should hold four stones")
		require.Equal(t, 1, white, "The white stone at (3,3) should have flipped")
		require.Equal(t, game.White, s.NextPlayer())
		require.Equal(t, []int{20}, s.History())

		snapshot := s.BoardSnapshot()
		require.Len(t, snapshot, 64)
		require.Equal(t, uint8(1), snapshot[3*game.BoardSize+3], "Cell (3,3) should now be black")
		require.Equal(t, uint8(2), snapshot[4*game.BoardSize+4], "Cell (4,4) should still be white")
	})

	t.Run("illegal placement is rejected without mutation", func(t *testing.T) {
		s := NewSession()

		applied, err := s.SubmitMove(1) // (0,0) captures nothing
		require.NoError(t, err)
		require.False(t, applied)

		black, white := s.Scores()
		require.Equal(t, 2, black, "A rejected move should not touch the board")
		require.Equal(t, 2, white)
		require.Equal(t, game.Black, s.NextPlayer())
		require.Empty(t, s.History())
	})

	t.Run("out-of-range code is an error", func(t *testing.T) {
		s := NewSession()
		for _, code := range []int{-1, 65} {
			_, err := s.SubmitMove(code)
			require.Error(t, err, "Code %d should be rejected as invalid", code)
		}
		require.Empty(t, s.History())
	})

	t.Run("pass is rejected while moves exist", func(t *testing.T) {
		s := NewSession()

		applied, err := s.SubmitMove(PassCode)
		require.NoError(t, err)
		require.False(t, applied, "Black has moves, so the pass must be refused")
		require.Equal(t, game.Black, s.NextPlayer(), "The turn should not advance")
	})

	t.Run("forced pass flips only the turn", func(t *testing.T) {
		s := NewSession()
		s.state = whiteStuckState(game.White)

		applied, err := s.SubmitMove(PassCode)
		require.NoError(t, err)
		require.True(t, applied, "White is stuck, the pass must be accepted")
		require.Equal(t, game.Black, s.NextPlayer())
		require.Equal(t, []int{PassCode}, s.History())

		black, white := s.Scores()
		require.Equal(t, 3, black, "A pass should not move stones")
		require.Equal(t, 3, white)

		// Black proceeds with a normal placement straight away.
		applied, err = s.SubmitMove(30) // (3,5)
		require.NoError(t, err)
		require.True(t, applied)
		require.Equal(t, []int{PassCode, 30}, s.History())
	})

	t.Run("no placement is accepted once the game is over", func(t *testing.T) {
		s := NewSession()
		s.state = deadState(game.White)
		require.True(t, s.GameOver())

		for _, code := range []int{1, 20, 64} {
			applied, err := s.SubmitMove(code)
			require.NoError(t, err)
			require.False(t, applied)
		}
	})
}

func TestRequestAIMove(t *testing.T) {
	t.Run("random strength plays a legal opening move", func(t *testing.T) {
		s := NewSession()

		code, ok, err := s.RequestAIMove(0)
		require.NoError(t, err)
		require.True(t, ok)
		require.Contains(t, []int{20, 27, 38, 45}, code,
			"The opening has exactly four legal placements")
		require.Equal(t, []int{code}, s.History())
		require.Equal(t, game.White, s.NextPlayer())
	})

	t.Run("alpha-beta strength is deterministic", func(t *testing.T) {
		s := NewSession()

		code, ok, err := s.RequestAIMove(3)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 20, code,
			"The symmetric opening ties, so the first row-major move should win")
	})

	t.Run("stuck player passes without consulting a strategy", func(t *testing.T) {
		s := NewSession()
		s.state = whiteStuckState(game.White)

		code, ok, err := s.RequestAIMove(3)
		require.NoError(t, err)
		require.True(t, ok, "The opponent can still move, so this is a pass, not game over")
		require.Equal(t, PassCode, code)
		require.Equal(t, []int{PassCode}, s.History())
		require.Equal(t, game.Black, s.NextPlayer())
	})

	t.Run("double stuck position reports game over", func(t *testing.T) {
		s := NewSession()
		s.state = deadState(game.White)

		_, ok, err := s.RequestAIMove(0)
		require.NoError(t, err)
		require.False(t, ok, "Neither colour can move")
		require.Equal(t, []int{PassCode}, s.History(), "The final pass is still recorded")
	})
}

func TestSessionPlaysToCompletion(t *testing.T) {
	s := NewSession()

	moves := 0
	for !s.GameOver() {
		_, _, err := s.RequestAIMove(1)
		require.NoError(t, err)
		moves++
		require.LessOrEqual(t, moves, 128, "A game must terminate")
	}

	black, white := s.Scores()
	require.LessOrEqual(t, black+white, 64)
	require.Equal(t, moves, len(s.History()),
		"Every transition, passes included, should be recorded")
}

func TestSessionString(t *testing.T) {
	s := NewSession()
	got := s.String()

	require.Contains(t, got, "...WB...", "Row 3 should show the starting stones")
	require.Contains(t, got, "...BW...", "Row 4 should show the starting stones")
	require.Contains(t, got, "Score: B 2 - W 2")
	require.Contains(t, got, "Next Turn: Black")
}
