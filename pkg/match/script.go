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
	"fmt"
	"os"
	"strings"
)

// Script is a list of moves to be played one after the other.
type Script struct {
	Moves []string
}

// NewScript reads a script file. The file has one move per line, blank
// lines and lines starting with '#' are ignored.
func NewScript(name string) (*Script, error) {
	file, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	return ParseScript(string(file)), nil
}

// ParseScript parses the contents of a script file.
func ParseScript(text string) *Script {
	var script Script
	for _, line := range strings.Split(text, "\n") {
		line = strings.Trim(line, "\n\r\t ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		script.Moves = append(script.Moves, line)
	}

	return &script
}

// Replay plays the script's moves in m and returns how many of them were
// accepted. It stops at the first rejected move, or with ErrMatchOver if
// the match ends before the script does.
func (script *Script) Replay(m *Match) (int, error) {
	for i, move := range script.Moves {
		if err := m.Play(move); err != nil {
			return i, fmt.Errorf("script move %d: %w", i+1, err)
		}
	}

	return len(script.Moves), nil
}
