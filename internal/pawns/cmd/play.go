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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pawns/pkg/match"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match between two players sharing the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts an interactive match of pawns-only chess. The
			first player plays white and moves first, the second plays
			black. Player names are taken from the flags, then from the
			configuration file, and are asked for if still missing.

			Moves are entered as the source and destination squares, like
			e2e4. A pawn wins by reaching the opposite end of the board, or
			by capturing every opposing pawn. A player who can't move
			ends the match in a stalemate.

			Entering exit ends the match early.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			first, _ := cmd.Flags().GetString("first")
			second, _ := cmd.Flags().GetString("second")
			fen, _ := cmd.Flags().GetString("fen")

			if first == "" {
				first = settings.Players.First
			}

			if second == "" {
				second = settings.Players.Second
			}

			console := match.Console{
				In:    cmd.InOrStdin(),
				Out:   cmd.OutOrStdout(),
				Names: [2]string{first, second},
				FEN:   fen,
			}

			m, err := console.Run()
			if err != nil {
				return err
			}

			if m.Over() {
				result, reason := m.Result()
				logrus.WithField("match", m.ID).Debugf("%s (%s)", result, reason)
			}

			return nil
		},
	}

	cmd.Flags().String("first", "", "Name of the First Player (White)")
	cmd.Flags().String("second", "", "Name of the Second Player (Black)")
	cmd.Flags().String("fen", "", "Position to Start the Match From")

	return cmd
}
