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

import "laptudirm.com/x/mess/pkg/board/piece"

// CheckWin reports whether the given colour has won by playing move: the
// pawn reached the colour's winning rank, or every opposing pawn has been
// captured.
func (b *Board) CheckWin(move Move, color piece.Color) bool {
	side := b.sides[color]
	return move.To.Rank == side.WinRank() || side.Captures >= PawnsPerSide
}

// CheckStalemate reports whether none of the given colour's pawns can
// advance a single square or capture diagonally, en passant included.
func (b *Board) CheckStalemate(color piece.Color) bool {
	direction := properties[color].Direction

	for _, sq := range b.Pawns(color) {
		ahead := sq.Offset(direction, 0)
		if !ahead.Valid() {
			continue
		}

		if b.At(ahead) == nil {
			return false
		}

		for _, df := range [2]int{-1, +1} {
			move := Move{
				From: sq, To: sq.Offset(direction, df),
				Direction: direction, Kind: Capture,
			}

			if move.To.Valid() && b.check(move, color) == nil {
				return false
			}
		}
	}

	return true
}

// LegalMoves generates every move the given colour can play. Unlike
// CheckStalemate it also includes double advances, which may be possible
// past an occupied square.
func (b *Board) LegalMoves(color piece.Color) []Move {
	direction := properties[color].Direction
	var moves []Move

	for _, sq := range b.Pawns(color) {
		targets := [...]Square{
			sq.Offset(direction, 0),
			sq.Offset(2*direction, 0),
			sq.Offset(direction, -1),
			sq.Offset(direction, +1),
		}

		for _, to := range targets {
			if !to.Valid() {
				continue
			}

			move := Move{
				From: sq, To: to,
				Direction: direction,
				Kind:      Classify(sq, to, direction),
			}

			if b.check(move, color) == nil {
				moves = append(moves, move)
			}
		}
	}

	return moves
}
