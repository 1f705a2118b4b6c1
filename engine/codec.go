package engine

import (
	"othello/game"

	"github.com/pkg/errors"
)

// PassCode is the compact encoding of a pass. Codes 1-64 index board cells
// in row-major order.
const PassCode = 0

const maxCode = game.BoardSize * game.BoardSize

// DecodeMove maps a compact move code onto a placement for player. PassCode
// yields ok=false with no error: a pass is an intent, not a placement.
// Codes outside 0-64 are rejected.
func DecodeMove(code int, player game.Colour) (mv game.Move, ok bool, err error) {
	switch {
	case code == PassCode:
		return game.Move{}, false, nil
	case code >= 1 && code <= maxCode:
		index := code - 1
		return game.Move{
			Player: player,
			Row:    index / game.BoardSize,
			Col:    index % game.BoardSize,
		}, true, nil
	default:
		return game.Move{}, false, errors.Errorf("move code must be between 0 and %d, got %d", maxCode, code)
	}
}

// EncodeMove maps a placement back onto its 1-64 code.
func EncodeMove(m game.Move) int {
	return m.Row*game.BoardSize + m.Col + 1
}
