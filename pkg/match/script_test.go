package match

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"laptudirm.com/x/pawns/pkg/board"
)

func TestParseScript(t *testing.T) {
	text := "# opening\r\ne2e4\n\n  d7d5  \n\t# reply\ne4d5\n"

	got := ParseScript(text).Moves
	want := []string{"e2e4", "d7d5", "e4d5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseScript() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewScript(t *testing.T) {
	name := filepath.Join(t.TempDir(), "moves.txt")
	if err := os.WriteFile(name, []byte(strings.Join(whiteWins, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}

	script, err := NewScript(name)
	if err != nil {
		t.Fatalf("NewScript() error: %v", err)
	}

	if diff := cmp.Diff(whiteWins, script.Moves); diff != "" {
		t.Errorf("NewScript() mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewScript(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("NewScript(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name   string
		moves  []string
		played int
		want   error
	}{
		{"whole match", whiteWins, len(whiteWins), nil},
		{"moves after the end", append(append([]string{}, whiteWins...), "h4h3"), len(whiteWins), ErrMatchOver},
		{"illegal move", []string{"e2e4", "e7e4"}, 1, board.ErrIllegalMove},
		{"bad format", []string{"e2e4", "e7-e5"}, 1, board.ErrInvalidFormat},
		{"empty", nil, 0, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := New("Alice", "Bob")

			played, err := (&Script{Moves: tt.moves}).Replay(m)
			if played != tt.played {
				t.Errorf("Replay() played %d moves, want %d", played, tt.played)
			}

			if tt.want == nil && err != nil {
				t.Errorf("Replay() error: %v", err)
			}

			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Replay() error = %v, want %v", err, tt.want)
			}
		})
	}
}
