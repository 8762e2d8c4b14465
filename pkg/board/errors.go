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
	"errors"
	"fmt"
)

// Sentinel errors for rejected moves. Use these with errors.Is to find
// out why a move was not accepted.
var (
	// ErrInvalidFormat is returned for move text which does not match
	// the [a-h][1-8][a-h][1-8] grammar.
	ErrInvalidFormat = errors.New("invalid move format")

	// ErrNoPawn is returned when the source square does not hold a pawn
	// of the side making the move.
	ErrNoPawn = errors.New("no pawn of the side to move at source")

	// ErrIllegalMove is returned for a well formed move which the rules
	// do not allow in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN is returned for a malformed position string.
	ErrInvalidFEN = errors.New("invalid position string")
)

// MoveError wraps a rejection reason with the move text which caused it.
// A rejected move never changes the board.
type MoveError struct {
	Move   string // the move text as given
	Err    error  // one of the sentinel errors above
	Reason string // optional human readable detail
}

func (e *MoveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("move %q: %v: %s", e.Move, e.Err, e.Reason)
	}

	return fmt.Sprintf("move %q: %v", e.Move, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

func illegal(move, format string, a ...any) error {
	return &MoveError{Move: move, Err: ErrIllegalMove, Reason: fmt.Sprintf(format, a...)}
}
