// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package match sequences the turns of a pawns-only chess match between
// two players, leaving every rules decision to package board.
package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"laptudirm.com/x/mess/pkg/board/piece"

	"laptudirm.com/x/pawns/pkg/board"
)

// ErrMatchOver is returned by Play once the match has a result.
var ErrMatchOver = errors.New("match is over")

// Match is a single match between two sides. The first player always
// plays white and moves first.
type Match struct {
	ID string

	board *board.Board
	turn  piece.Color

	over   bool
	result Result
	reason string

	log *logrus.Entry
}

// New creates a match from the starting position.
func New(first, second string) *Match {
	m, _ := FromFEN(first, second, board.StartFEN)
	return m
}

// FromFEN creates a match from the given position string. A position in
// which one side has already won starts out as a finished match, one in
// which both have is rejected.
func FromFEN(first, second, fen string) (*Match, error) {
	white := board.NewSide(first, piece.White)
	black := board.NewSide(second, piece.Black)

	b, turn, err := board.ParseFEN(fen, white, black)
	if err != nil {
		return nil, err
	}

	won := [piece.ColorN]string{
		piece.White: wonBy(b, piece.White),
		piece.Black: wonBy(b, piece.Black),
	}

	if won[piece.White] != "" && won[piece.Black] != "" {
		return nil, fmt.Errorf("%w: both sides have already won", board.ErrInvalidFEN)
	}

	m := &Match{
		ID:    uuid.NewString(),
		board: b,
		turn:  turn,
	}

	m.log = logrus.WithField("match", m.ID)
	m.log.WithFields(logrus.Fields{
		"white": first,
		"black": second,
		"fen":   fen,
	}).Debug("new match")

	for _, color := range []piece.Color{piece.White, piece.Black} {
		if won[color] != "" {
			m.finish(GameWonBy[color], won[color])
			return m, nil
		}
	}

	m.checkStalemate()
	return m, nil
}

// wonBy returns the reason the given colour has already won in the
// position, or "" if it hasn't.
func wonBy(b *board.Board, color piece.Color) string {
	side := b.Side(color)
	for _, sq := range b.Pawns(color) {
		if sq.Rank == side.WinRank() {
			return ReasonBackRank
		}
	}

	if side.Captures >= board.PawnsPerSide {
		return ReasonEradication
	}

	return ""
}

// Board returns the match's board. It should only be read from, moves
// are made with Play.
func (m *Match) Board() *board.Board {
	return m.board
}

// Turn returns the side to move.
func (m *Match) Turn() *board.Side {
	return m.board.Side(m.turn)
}

// Side returns the side playing the given colour.
func (m *Match) Side(color piece.Color) *board.Side {
	return m.board.Side(color)
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.over
}

// Result returns the result of the match and the reason for it. It is
// only meaningful once Over returns true.
func (m *Match) Result() (Result, string) {
	return m.result, m.reason
}

// Winner returns the side which won the match, or nil if the match is
// still going on or was drawn.
func (m *Match) Winner() *board.Side {
	if !m.over {
		return nil
	}

	switch m.result {
	case Win:
		return m.board.Side(piece.White)
	case Loss:
		return m.board.Side(piece.Black)
	default:
		return nil
	}
}

// FEN returns the position string of the current position.
func (m *Match) FEN() string {
	return m.board.FEN(m.turn)
}

// Play plays the given move text for the side to move. A rejected move
// does not use up the turn, and the returned error tells why it was
// rejected. After an accepted move the match checks whether the mover has
// won and otherwise whether the next side to move is stalemated.
func (m *Match) Play(s string) error {
	if m.over {
		return ErrMatchOver
	}

	side := m.Turn()
	log := m.log.WithFields(logrus.Fields{
		"side": side.Label(),
		"move": s,
	})

	move, err := m.board.MakeMove(s, m.turn)
	if err != nil {
		log.WithError(err).Debug("move rejected")
		return err
	}

	log.WithField("kind", move.Kind).Trace("move accepted")

	if m.board.CheckWin(move, m.turn) {
		reason := ReasonEradication
		if move.To.Rank == side.WinRank() {
			reason = ReasonBackRank
		}

		m.finish(GameWonBy[m.turn], reason)
		return nil
	}

	m.turn = board.Opponent(m.turn)
	m.checkStalemate()
	return nil
}

func (m *Match) checkStalemate() {
	if m.board.CheckStalemate(m.turn) {
		m.finish(Draw, ReasonStalemate)
	}
}

func (m *Match) finish(result Result, reason string) {
	m.over = true
	m.result = result
	m.reason = reason

	m.log.WithFields(logrus.Fields{
		"result": result,
		"reason": reason,
	}).Debug("match finished")
}
