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
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/mess/pkg/board/piece"
)

// StartFEN is the position string of the starting position.
const StartFEN = "8/pppppppp/8/8/8/8/PPPPPPPP/8 w -"

// ParseFEN creates a board from a position string of the form
//
//	<placement> [<side to move> [<en passant square>]]
//
// The placement lists ranks 8 to 1 separated by '/', with 'P' for a white
// pawn, 'p' for a black pawn and digits for runs of empty squares. The
// side to move is 'w' or 'b' and defaults to 'w'. A pawn is considered to
// have moved if it is off its start rank, and each side's capture count is
// the number of opposing pawns missing from the board.
func ParseFEN(fen string, white, black *Side) (*Board, piece.Color, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 || len(fields) > 3 {
		return nil, piece.White, fmt.Errorf("%w: want 1 to 3 fields, got %d", ErrInvalidFEN, len(fields))
	}

	b := NewEmpty(white, black)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Size {
		return nil, piece.White, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidFEN, Size, len(ranks))
	}

	for i, row := range ranks {
		rank := Size - 1 - i
		file := 0
		for _, c := range row {
			if file >= Size {
				return nil, piece.White, fmt.Errorf("%w: rank %d is too long", ErrInvalidFEN, rank+1)
			}

			var color piece.Color
			switch {
			case c == 'P':
				color = piece.White
			case c == 'p':
				color = piece.Black
			case c >= '1' && c <= '8':
				file += int(c - '0')
				continue
			default:
				return nil, piece.White, fmt.Errorf("%w: unexpected %q", ErrInvalidFEN, c)
			}

			props := properties[color]
			if rank == properties[Opponent(color)].WinRank {
				return nil, piece.White, fmt.Errorf("%w: %s pawn behind its start rank", ErrInvalidFEN, props.Label)
			}

			b.Place(Square{Rank: rank, File: file}, color, rank != props.StartRank)
			file++
		}

		if file != Size {
			return nil, piece.White, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	for _, color := range []piece.Color{piece.White, piece.Black} {
		remaining := len(b.Pawns(Opponent(color)))
		if remaining > PawnsPerSide {
			return nil, piece.White, fmt.Errorf("%w: more than %d %s pawns", ErrInvalidFEN, PawnsPerSide, properties[Opponent(color)].Label)
		}

		b.sides[color].Captures = PawnsPerSide - remaining
	}

	turn := piece.White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
		case "b":
			turn = piece.Black
		default:
			return nil, piece.White, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
		}
	}

	if len(fields) == 3 && fields[2] != "-" {
		if err := b.setEnPassantFEN(fields[2], Opponent(turn)); err != nil {
			return nil, piece.White, err
		}
	}

	return b, turn, nil
}

// setEnPassantFEN sets the en passant target from a position string. The
// target must be the square passed over by a pawn of owner which has just
// double advanced.
func (b *Board) setEnPassantFEN(s string, owner piece.Color) error {
	sq, err := NewSquare(s)
	if err != nil {
		return fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, s)
	}

	props := properties[owner]
	landing := sq.Offset(props.Direction, 0)
	if sq.Rank != props.StartRank+props.Direction || b.At(sq) != nil ||
		b.At(landing) == nil || b.At(landing).Owner != owner {
		return fmt.Errorf("%w: no %s double advance past %s", ErrInvalidFEN, props.Label, sq)
	}

	b.enPassant = sq
	b.enPassantOwner = owner
	b.hasEnPassant = true
	return nil
}

// FEN returns the position string of the board with the given side to
// move. It is the inverse of ParseFEN.
func (b *Board) FEN(turn piece.Color) string {
	var fen strings.Builder

	for rank := Size - 1; rank >= 0; rank-- {
		gaps := 0
		for _, pawn := range b.squares[rank] {
			if pawn == nil {
				gaps++
				continue
			}

			if gaps > 0 {
				fen.WriteString(strconv.Itoa(gaps))
				gaps = 0
			}

			if pawn.Owner == piece.White {
				fen.WriteByte('P')
			} else {
				fen.WriteByte('p')
			}
		}

		if gaps > 0 {
			fen.WriteString(strconv.Itoa(gaps))
		}

		if rank > 0 {
			fen.WriteByte('/')
		}
	}

	if turn == piece.White {
		fen.WriteString(" w")
	} else {
		fen.WriteString(" b")
	}

	if b.hasEnPassant && b.enPassantOwner != turn {
		fen.WriteString(" " + b.enPassant.String())
	} else {
		fen.WriteString(" -")
	}

	return fen.String()
}
