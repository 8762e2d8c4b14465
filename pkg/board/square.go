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

// Package board implements the rules of pawns-only chess: an 8x8 board
// holding one row of pawns for each side, won by reaching the far rank or
// by capturing every opposing pawn.
package board

import "fmt"

// Size is the number of ranks and files on the board.
const Size = 8

// Square is a (rank, file) coordinate on the board. Rank 0 is the first
// rank and file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// NewSquare parses a square from its two character form, like "e4".
func NewSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, &MoveError{Move: s, Err: ErrInvalidFormat}
	}

	return Square{
		Rank: int(s[1] - '1'),
		File: int(s[0] - 'a'),
	}, nil
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Rank >= 0 && sq.Rank < Size && sq.File >= 0 && sq.File < Size
}

// Offset returns the square dr ranks and df files away from sq. The
// result may be off the board.
func (sq Square) Offset(dr, df int) Square {
	return Square{Rank: sq.Rank + dr, File: sq.File + df}
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+sq.File, '1'+sq.Rank)
}
