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
	"io"
	"strings"
	"unicode"
)

var border = "  " + strings.Repeat("+---", Size) + "+"

// Print renders the board to w with rank 8 at the top. Each pawn is shown
// by the first letter of its side's colour.
func (b *Board) Print(w io.Writer) {
	fmt.Fprintln(w, border)
	for rank := Size - 1; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for _, pawn := range b.squares[rank] {
			letter := ' '
			if pawn != nil {
				letter = unicode.ToUpper(rune(properties[pawn.Owner].Label[0]))
			}

			fmt.Fprintf(w, "| %c ", letter)
		}

		fmt.Fprintln(w, "|")
		fmt.Fprintln(w, border)
	}

	files := make([]string, Size)
	for file := range files {
		files[file] = string(rune('a' + file))
	}

	fmt.Fprintf(w, "    %s\n", strings.Join(files, "   "))
}

func (b *Board) String() string {
	var s strings.Builder
	b.Print(&s)
	return s.String()
}
