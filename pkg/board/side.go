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

// PawnsPerSide is the number of pawns each side starts with. Capturing
// all of them wins the game.
const PawnsPerSide = Size

// Properties are the fixed rules attributes of a side.
type Properties struct {
	Label     string // display colour
	Direction int    // rank delta of a forward move
	WinRank   int    // rank which wins the game when reached
	StartRank int    // rank the side's pawns are set up on
}

// properties maps each colour to its rules attributes. The assignment is
// fixed for the whole match.
var properties = [piece.ColorN]Properties{
	piece.White: {Label: "white", Direction: +1, WinRank: 7, StartRank: 1},
	piece.Black: {Label: "black", Direction: -1, WinRank: 0, StartRank: 6},
}

// PropertiesOf returns the rules attributes of the given colour.
func PropertiesOf(color piece.Color) Properties {
	return properties[color]
}

// Opponent returns the colour playing against the given one.
func Opponent(color piece.Color) piece.Color {
	if color == piece.White {
		return piece.Black
	}

	return piece.White
}

// Side is one of the two players of a match.
type Side struct {
	Name  string
	Color piece.Color

	// Captures is the number of opposing pawns this side has taken, in
	// the range [0, PawnsPerSide].
	Captures int
}

// NewSide creates a side with the given name playing the given colour.
func NewSide(name string, color piece.Color) *Side {
	return &Side{Name: name, Color: color}
}

// Label returns the side's display colour, "white" or "black".
func (side *Side) Label() string {
	return properties[side.Color].Label
}

// Direction returns +1 if the side advances towards higher ranks and -1
// otherwise.
func (side *Side) Direction() int {
	return properties[side.Color].Direction
}

// WinRank returns the rank which wins the game for the side.
func (side *Side) WinRank() int {
	return properties[side.Color].WinRank
}
