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

import "regexp"

// moveRegexp is the grammar every move string must match.
var moveRegexp = regexp.MustCompile(`^([a-h][1-8]){2}$`)

// Kind is the geometric shape of a move. It narrows down which rule
// decides the move's legality, but does not look at the board.
type Kind uint8

const (
	Invalid Kind = iota
	Advance
	DoubleAdvance
	Capture
)

func (kind Kind) String() string {
	switch kind {
	case Advance:
		return "advance"
	case DoubleAdvance:
		return "double advance"
	case Capture:
		return "capture"
	default:
		return "invalid"
	}
}

// Classify returns the shape of a move from one square to another for a
// side advancing in the given direction.
func Classify(from, to Square, direction int) Kind {
	ranks := (to.Rank - from.Rank) * direction
	files := to.File - from.File

	switch {
	case ranks == 1 && (files == 1 || files == -1):
		return Capture
	case ranks == 1 && files == 0:
		return Advance
	case ranks == 2 && files == 0:
		return DoubleAdvance
	default:
		return Invalid
	}
}

// Move is a classified transition of a pawn between two squares.
type Move struct {
	From, To  Square
	Direction int
	Kind      Kind
}

// NewMove parses a move string like "e2e4" for a side advancing in the
// given direction. Text which does not match the move grammar is rejected
// with ErrInvalidFormat.
func NewMove(s string, direction int) (Move, error) {
	if !moveRegexp.MatchString(s) {
		return Move{}, &MoveError{Move: s, Err: ErrInvalidFormat}
	}

	// the grammar guarantees both halves decode
	from, _ := NewSquare(s[:2])
	to, _ := NewSquare(s[2:])

	return Move{
		From:      from,
		To:        to,
		Direction: direction,
		Kind:      Classify(from, to, direction),
	}, nil
}

func (move Move) String() string {
	return move.From.String() + move.To.String()
}
