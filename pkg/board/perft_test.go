package board

import (
	"testing"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{"start depth 0", StartFEN, 0, 1},
		{"start depth 1", StartFEN, 1, 16},
		{"start depth 2", StartFEN, 2, 256},
		{"win is a leaf", "8/P7/8/8/8/8/8/7p w -", 3, 1},
		{"stalemate is a leaf", "8/8/8/p7/P7/8/8/8 w -", 4, 1},
		{"win among other moves", "8/P6p/8/8/8/8/7P/8 w -", 2, 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, turn, err := ParseFEN(tt.fen, nil, nil)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", tt.fen, err)
			}

			before := b.FEN(turn)
			if got := b.Perft(turn, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}

			if after := b.FEN(turn); after != before {
				t.Errorf("Perft modified the board: %q, want %q", after, before)
			}
		})
	}
}
