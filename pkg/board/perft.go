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

// Perft counts the leaves of the move tree of the given depth rooted at
// the current position, with color to move. Positions in which the match
// is over, by a win or a stalemate, are leaves regardless of depth.
func (b *Board) Perft(color piece.Color, depth int) int {
	if depth == 0 || b.CheckStalemate(color) {
		return 1
	}

	nodes := 0
	for _, move := range b.LegalMoves(color) {
		child := b.Clone()
		child.apply(move, color)

		if child.CheckWin(move, color) {
			nodes++
			continue
		}

		nodes += child.Perft(Opponent(color), depth-1)
	}

	return nodes
}
