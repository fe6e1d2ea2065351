package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-cli/internal/game"
)

func TestRenderRowPlain(t *testing.T) {
	tests := []struct {
		description string
		answer      string
		guess       string
		want        string
	}{
		{"All hits", "crane", "crane", "CRANE  ====="},
		{"Mixed feedback", "crane", "trace", "TRACE  .==+="},
		{"All misses", "crane", "updog", "UPDOG  ....."},
		{"Duplicates consumed once", "speed", "erase", "ERASE  +..++"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			req := require.New(t)
			marks := game.Score(tc.answer, tc.guess)
			req.Equal(tc.want, renderRow(tc.guess, marks, false))
		})
	}
}

func TestRenderRowColoredKeepsLetters(t *testing.T) {
	req := require.New(t)
	marks := game.Score("crane", "trace")
	row := renderRow("trace", marks, true)
	for _, r := range "TRACE" {
		req.Contains(row, string(r))
	}
}
