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

package match

import "laptudirm.com/x/mess/pkg/board/piece"

// Result represents the result of a single match, from the point of view
// of the first (white) player.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameWonBy maps the winning colour to the match's Result.
var GameWonBy = [piece.ColorN]Result{
	piece.White: Win,
	piece.Black: Loss,
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// Reasons a match can end for.
const (
	ReasonBackRank    = "Back Rank"   // a pawn reached its winning rank
	ReasonEradication = "Eradication" // every opposing pawn was captured
	ReasonStalemate   = "Stalemate"   // the side to move has no moves
)
