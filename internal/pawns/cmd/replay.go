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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pawns/pkg/board"
	"laptudirm.com/x/pawns/pkg/match"
)

func Replay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay script-file",
		Short: "Play the moves in a script file and show the final position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`replay plays the moves listed in the given script file, one
			move per line, with white moving first. Blank lines and lines
			starting with # are ignored.

			The final board is printed along with the number of moves
			played, the result if the match is over, and the position in
			FEN. Replaying stops at the first move which is not accepted.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			fen, _ := cmd.Flags().GetString("fen")
			if fen == "" {
				fen = board.StartFEN
			}

			script, err := match.NewScript(args[0])
			if err != nil {
				return err
			}

			m, err := match.FromFEN(settings.Players.First, settings.Players.Second, fen)
			if err != nil {
				return err
			}

			played, replayErr := script.Replay(m)

			out := cmd.OutOrStdout()
			m.Board().Print(out)
			fmt.Fprintf(out, "moves:  %d\n", played)

			if m.Over() {
				result, reason := m.Result()
				fmt.Fprintf(out, "result: %s (%s)\n", result, reason)
			} else {
				fmt.Fprintf(out, "result: * (%s to move)\n", m.Turn().Label())
			}

			fmt.Fprintf(out, "fen:    %s\n", m.FEN())
			return replayErr
		},
	}

	cmd.Flags().String("fen", "", "Position to Start the Replay From")

	return cmd
}
