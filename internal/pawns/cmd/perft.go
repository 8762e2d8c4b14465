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
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pawns/pkg/board"
	"laptudirm.com/x/pawns/internal/util"
)

func Perft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count the positions reachable from a position",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`perft walks the tree of legal moves from the given position,
			the starting position by default, and prints the number of
			leaves at every depth up to the one provided. Positions where
			the match is over are counted as leaves.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			depth, _ := cmd.Flags().GetInt("depth")
			fen, _ := cmd.Flags().GetString("fen")
			if fen == "" {
				fen = board.StartFEN
			}

			if depth < 1 {
				return fmt.Errorf("perft: invalid depth %d", depth)
			}

			b, turn, err := board.ParseFEN(fen, nil, nil)
			if err != nil {
				return err
			}

			for d := 1; d <= depth; d++ {
				start := time.Now()

				util.StartSpinner(fmt.Sprintf(" depth %d", d))
				nodes := b.Perft(turn, d)
				util.PauseSpinner()

				logrus.Debugf("perft(%d) took %s", d, time.Since(start))
				fmt.Fprintf(cmd.OutOrStdout(), "perft(%d) = %d\n", d, nodes)
			}

			return nil
		},
	}

	cmd.Flags().IntP("depth", "d", 4, "Depth of the Move Tree")
	cmd.Flags().String("fen", "", "Position to Count From")

	return cmd
}
