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

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/pawns/pkg/board"
)

// ExitCommand ends a match early when entered instead of a move. It is
// matched case-insensitively.
const ExitCommand = "exit"

var (
	errorColor = color.New(color.FgRed)
	winColor   = color.New(color.FgGreen, color.Bold)
	drawColor  = color.New(color.FgYellow, color.Bold)
)

// Console plays a match between two people sharing a terminal. It reads
// one line per prompt from In and writes the board and messages to Out.
type Console struct {
	In  io.Reader
	Out io.Writer

	// Names of the first and second player. Empty names are asked for
	// before the match starts.
	Names [2]string

	// FEN is the position to start from, the starting position if empty.
	FEN string

	scanner *bufio.Scanner
}

// Run plays a match until it ends, the exit command is entered or the
// input runs out. It returns the match as it was left.
func (console *Console) Run() (*Match, error) {
	console.scanner = bufio.NewScanner(console.In)

	fmt.Fprintln(console.Out, "Pawns-Only Chess")

	prompts := [2]string{"First Player's name: ", "Second Player's name: "}
	for i, name := range console.Names {
		if name != "" {
			continue
		}

		line, ok := console.read(prompts[i])
		if !ok {
			if err := console.scanner.Err(); err != nil {
				return nil, err
			}

			return nil, io.ErrUnexpectedEOF
		}

		console.Names[i] = line
	}

	fen := console.FEN
	if fen == "" {
		fen = board.StartFEN
	}

	m, err := FromFEN(console.Names[0], console.Names[1], fen)
	if err != nil {
		return nil, err
	}

	m.Board().Print(console.Out)

	for !m.Over() {
		fmt.Fprintf(console.Out, "%s's turn:\n", m.Turn().Name)

		line, ok := console.read("> ")
		if !ok || strings.EqualFold(line, ExitCommand) {
			break
		}

		if err := m.Play(line); err != nil {
			errorColor.Fprintln(console.Out, rejection(m.Turn(), line, err))
			continue
		}

		m.Board().Print(console.Out)
	}

	if m.Over() {
		if winner := m.Winner(); winner != nil {
			winColor.Fprintf(console.Out, "%s Wins!\n", capitalize(winner.Label()))
		} else {
			drawColor.Fprintln(console.Out, "Stalemate!")
		}
	}

	fmt.Fprintln(console.Out, "Bye")
	return m, console.scanner.Err()
}

// read prompts for and reads a single line of input.
func (console *Console) read(prompt string) (string, bool) {
	fmt.Fprint(console.Out, prompt)
	if !console.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(console.scanner.Text()), true
}

// rejection returns the message shown to a player whose move was not
// accepted.
func rejection(side *board.Side, move string, err error) string {
	if errors.Is(err, board.ErrNoPawn) {
		return fmt.Sprintf("No %s pawn at %s", side.Label(), move[:2])
	}

	return "Invalid Input"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
