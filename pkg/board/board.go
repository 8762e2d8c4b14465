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

package board

import (
	"laptudirm.com/x/mess/pkg/board/piece"
)

// Board is a pawns-only chess position. All changes to the position go
// through MakeMove, which either applies a move completely or leaves the
// board untouched.
type Board struct {
	// squares[rank][file], nil for an empty square
	squares [Size][Size]*Pawn

	sides [piece.ColorN]*Side

	// The square a pawn which just double advanced can be captured on,
	// and the colour of that pawn. Only the other side may capture there,
	// and only on the very next move.
	enPassant      Square
	enPassantOwner piece.Color
	hasEnPassant   bool
}

// New creates a board with the starting position: a full row of pawns on
// each side's start rank. Nil sides are replaced by unnamed ones.
func New(white, black *Side) *Board {
	b := NewEmpty(white, black)
	for _, color := range []piece.Color{piece.White, piece.Black} {
		rank := properties[color].StartRank
		for file := 0; file < Size; file++ {
			b.Place(Square{Rank: rank, File: file}, color, false)
		}
	}

	return b
}

// NewEmpty creates a board without any pawns on it.
func NewEmpty(white, black *Side) *Board {
	if white == nil {
		white = NewSide("", piece.White)
	}

	if black == nil {
		black = NewSide("", piece.Black)
	}

	var b Board
	b.sides[piece.White] = white
	b.sides[piece.Black] = black
	return &b
}

// Place puts a pawn of the given colour on a square, replacing whatever
// was there. It is meant for setting up positions, not for playing moves.
func (b *Board) Place(sq Square, color piece.Color, advanced bool) {
	pawn := NewPawn(color)
	if advanced {
		pawn.MarkAdvanced()
	}

	b.squares[sq.Rank][sq.File] = pawn
}

// At returns the pawn on the given square, or nil if it is empty. The
// square must be on the board.
func (b *Board) At(sq Square) *Pawn {
	return b.squares[sq.Rank][sq.File]
}

// Side returns the side playing the given colour.
func (b *Board) Side(color piece.Color) *Side {
	return b.sides[color]
}

// EnPassant returns the current en passant target, if any.
func (b *Board) EnPassant() (Square, bool) {
	return b.enPassant, b.hasEnPassant
}

// Pawns returns the squares holding pawns of the given colour, ordered
// from rank 1 to rank 8 and file a to file h.
func (b *Board) Pawns(color piece.Color) []Square {
	var squares []Square
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			if pawn := b.squares[rank][file]; pawn != nil && pawn.Owner == color {
				squares = append(squares, Square{Rank: rank, File: file})
			}
		}
	}

	return squares
}

// MakeMove plays the given move text for the given colour. A nil error
// means the move was accepted and applied. Otherwise the returned error
// is a *MoveError wrapping ErrInvalidFormat, ErrNoPawn or ErrIllegalMove,
// and nothing on the board has changed.
func (b *Board) MakeMove(s string, color piece.Color) (Move, error) {
	move, err := NewMove(s, b.sides[color].Direction())
	if err != nil {
		return Move{}, err
	}

	if err := b.check(move, color); err != nil {
		return move, err
	}

	b.apply(move, color)
	return move, nil
}

// check reports why the move can't be played by the given colour, or nil
// if it is legal. It never modifies the board.
func (b *Board) check(move Move, color piece.Color) error {
	pawn := b.At(move.From)
	if pawn == nil || pawn.Owner != color {
		return &MoveError{
			Move:   move.String(),
			Err:    ErrNoPawn,
			Reason: "no " + properties[color].Label + " pawn at " + move.From.String(),
		}
	}

	target := b.At(move.To)
	switch move.Kind {
	case Capture:
		if target != nil && target.Owner != color {
			return nil
		}

		if target == nil && b.canEnPassant(move, color) {
			return nil
		}

		return illegal(move.String(), "nothing to capture on %s", move.To)

	case Advance:
		if target != nil {
			return illegal(move.String(), "%s is occupied", move.To)
		}

		return nil

	case DoubleAdvance:
		// Only the destination is checked, the square in between may be
		// occupied.
		if pawn.Advanced {
			return illegal(move.String(), "pawn on %s has already moved", move.From)
		}

		if target != nil {
			return illegal(move.String(), "%s is occupied", move.To)
		}

		return nil

	default:
		return illegal(move.String(), "a pawn can't move from %s to %s", move.From, move.To)
	}
}

// canEnPassant reports whether a capture onto move.To takes the opposing
// pawn which just double advanced past it.
func (b *Board) canEnPassant(move Move, color piece.Color) bool {
	if !b.hasEnPassant || b.enPassantOwner == color || move.To != b.enPassant {
		return false
	}

	victim := b.At(move.To.Offset(-move.Direction, 0))
	return victim != nil && victim.Owner != color
}

// apply plays a move which check has accepted.
func (b *Board) apply(move Move, color piece.Color) {
	if move.Kind == Capture {
		captured := move.To
		if b.At(captured) == nil {
			// en passant: the captured pawn is one rank behind the target
			captured = move.To.Offset(-move.Direction, 0)
		}

		b.squares[captured.Rank][captured.File] = nil
		b.sides[color].Captures++
	}

	pawn := b.At(move.From)
	pawn.MarkAdvanced()
	b.squares[move.To.Rank][move.To.File] = pawn
	b.squares[move.From.Rank][move.From.File] = nil

	if move.Kind == DoubleAdvance {
		b.enPassant = move.To.Offset(-move.Direction, 0)
		b.enPassantOwner = color
		b.hasEnPassant = true
		return
	}

	b.hasEnPassant = false
}

// Clone returns a deep copy of the board, including its sides.
func (b *Board) Clone() *Board {
	clone := *b
	for color, side := range b.sides {
		s := *side
		clone.sides[color] = &s
	}

	for rank := range b.squares {
		for file, pawn := range b.squares[rank] {
			if pawn != nil {
				p := *pawn
				clone.squares[rank][file] = &p
			}
		}
	}

	return &clone
}
