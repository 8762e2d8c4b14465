package match

import (
	"errors"
	"testing"

	"laptudirm.com/x/mess/pkg/board/piece"

	"laptudirm.com/x/pawns/pkg/board"
)

// whiteWins plays a short match in which white reaches the eighth rank.
var whiteWins = []string{
	"a2a4", "b7b5",
	"a4b5", "h7h6",
	"b5b6", "h6h5",
	"b6a7", "h5h4",
	"a7a8",
}

func TestNew(t *testing.T) {
	m := New("Alice", "Bob")

	if m.ID == "" {
		t.Error("match has no ID")
	}

	if got := m.Turn(); got.Name != "Alice" || got.Color != piece.White {
		t.Errorf("Turn() = %+v, want Alice playing white", got)
	}

	if got := m.Side(piece.Black); got.Name != "Bob" || got.Direction() != -1 || got.WinRank() != 0 {
		t.Errorf("Side(black) = %+v, want Bob moving down to rank 1", got)
	}

	if m.Over() {
		t.Error("new match is over")
	}

	if got := m.FEN(); got != board.StartFEN {
		t.Errorf("FEN() = %q, want %q", got, board.StartFEN)
	}
}

func TestPlayAlternatesTurns(t *testing.T) {
	m := New("Alice", "Bob")

	for i, move := range []string{"e2e4", "d7d5", "e4d5"} {
		want := []piece.Color{piece.White, piece.Black, piece.White}[i]
		if got := m.Turn().Color; got != want {
			t.Fatalf("before %s: Turn() = %v, want %v", move, got, want)
		}

		if err := m.Play(move); err != nil {
			t.Fatalf("Play(%s) error: %v", move, err)
		}
	}

	if got := m.Side(piece.White).Captures; got != 1 {
		t.Errorf("white captures = %d, want 1", got)
	}

	if got := m.Turn().Color; got != piece.Black {
		t.Errorf("Turn() = %v, want black", got)
	}
}

func TestRejectedMoveKeepsTurn(t *testing.T) {
	m := New("Alice", "Bob")

	tests := []struct {
		move string
		want error
	}{
		{"e2e5", board.ErrIllegalMove},
		{"e7e5", board.ErrNoPawn},
		{"hello", board.ErrInvalidFormat},
		{"e2e4 ", board.ErrInvalidFormat},
	}

	for _, tt := range tests {
		if err := m.Play(tt.move); !errors.Is(err, tt.want) {
			t.Errorf("Play(%q) error = %v, want %v", tt.move, err, tt.want)
		}

		if got := m.Turn().Color; got != piece.White {
			t.Errorf("after Play(%q): Turn() = %v, want white", tt.move, got)
		}
	}

	if got := m.FEN(); got != board.StartFEN {
		t.Errorf("FEN() = %q, want %q", got, board.StartFEN)
	}
}

func TestMatchResults(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  []string
		result Result
		reason string
		winner string
	}{
		{"back rank", board.StartFEN, whiteWins, Win, ReasonBackRank, "Alice"},
		{"black back rank", "8/8/8/8/8/8/p6P/8 b -", []string{"a2a1"}, Loss, ReasonBackRank, "Bob"},
		{"eradication", "8/8/8/1p6/P7/8/8/8 w -", []string{"a4b5"}, Win, ReasonEradication, "Alice"},
		{"stalemate after a move", "8/8/8/p7/8/P7/8/8 w -", []string{"a3a4"}, Draw, ReasonStalemate, ""},
		{"stalemate at the start", "8/8/8/p7/P7/8/8/8 w -", nil, Draw, ReasonStalemate, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := FromFEN("Alice", "Bob", tt.fen)
			if err != nil {
				t.Fatalf("FromFEN(%q) error: %v", tt.fen, err)
			}

			for _, move := range tt.moves {
				if err := m.Play(move); err != nil {
					t.Fatalf("Play(%s) error: %v", move, err)
				}
			}

			if !m.Over() {
				t.Fatal("match is not over")
			}

			result, reason := m.Result()
			if result != tt.result || reason != tt.reason {
				t.Errorf("Result() = %v, %q; want %v, %q", result, reason, tt.result, tt.reason)
			}

			winner := ""
			if side := m.Winner(); side != nil {
				winner = side.Name
			}

			if winner != tt.winner {
				t.Errorf("Winner() = %q, want %q", winner, tt.winner)
			}

			if err := m.Play("h2h3"); !errors.Is(err, ErrMatchOver) {
				t.Errorf("Play after the end error = %v, want ErrMatchOver", err)
			}
		})
	}
}

func TestFromFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"not a position", "not a position"},
		{"both on the last rank", "P7/8/8/8/8/8/8/7p w -"},
		{"no pawns", "8/8/8/8/8/8/8/8 w -"},
	}

	for _, tt := range tests {
		if _, err := FromFEN("Alice", "Bob", tt.fen); !errors.Is(err, board.ErrInvalidFEN) {
			t.Errorf("%s: FromFEN error = %v, want ErrInvalidFEN", tt.name, err)
		}
	}
}

func TestFromFENAlreadyWon(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		result Result
		reason string
	}{
		{"white on rank 8", "P7/8/8/8/8/8/7p/8 b -", Win, ReasonBackRank},
		{"black on rank 1", "8/7P/8/8/8/8/8/p7 w -", Loss, ReasonBackRank},
		{"no black pawns", "8/8/8/8/8/8/P7/8 b -", Win, ReasonEradication},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := FromFEN("Alice", "Bob", tt.fen)
			if err != nil {
				t.Fatalf("FromFEN(%q) error: %v", tt.fen, err)
			}

			if !m.Over() {
				t.Fatal("match is not over")
			}

			if result, reason := m.Result(); result != tt.result || reason != tt.reason {
				t.Errorf("Result() = %v, %q; want %v, %q", result, reason, tt.result, tt.reason)
			}

			if err := m.Play("a2a3"); !errors.Is(err, ErrMatchOver) {
				t.Errorf("Play error = %v, want ErrMatchOver", err)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result Result
		want   string
	}{
		{Win, "1-0"},
		{Draw, "1/2-1/2"},
		{Loss, "0-1"},
		{Result(7), "?-?"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int(tt.result), got, tt.want)
		}
	}
}
