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

// Pawn is a pawn on the board belonging to one of the two sides.
type Pawn struct {
	Owner piece.Color

	// Advanced is set once the pawn has made its first move, after which
	// it can no longer double advance.
	Advanced bool
}

// NewPawn creates a pawn for the given side which has not yet moved.
func NewPawn(owner piece.Color) *Pawn {
	return &Pawn{Owner: owner}
}

// MarkAdvanced records that the pawn has moved.
func (pawn *Pawn) MarkAdvanced() {
	pawn.Advanced = true
}
