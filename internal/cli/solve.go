// internal/cli/solve.go
//
// Solver comparison mode: plays a known secret with both strategies and
// renders their guess sequences side by side, with wall-clock timings.

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/robalobadob/wordle-cli/internal/game"
	"github.com/robalobadob/wordle-cli/internal/solver"
)

// solveRun holds one strategy's finished sequence.
type solveRun struct {
	name    string
	guesses []string
	solved  bool
	elapsed time.Duration
}

// RunSolve solves secret with minimax and the first-candidate baseline and
// writes a side-by-side comparison table. The secret must be a word from
// candidates.
func RunSolve(out io.Writer, secret string, candidates []string, colored bool) error {
	secret = strings.ToLower(strings.TrimSpace(secret))
	strategies := []solver.Strategy{solver.NewMinimax(), solver.FirstCandidate{}}

	runs := make([]solveRun, 0, len(strategies))
	for _, s := range strategies {
		start := time.Now()
		guesses, solved, err := solver.Solve(secret, s, candidates)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		runs = append(runs, solveRun{
			name:    s.Name(),
			guesses: guesses,
			solved:  solved,
			elapsed: time.Since(start),
		})
	}

	fmt.Fprintf(out, "Secret: %s\n", strings.ToUpper(secret))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", runs[0].name, runs[1].name})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i := 0; i < solver.MaxGuesses; i++ {
		row := []string{fmt.Sprintf("%d", i+1)}
		for _, r := range runs {
			if i < len(r.guesses) {
				g := r.guesses[i]
				row = append(row, renderRow(g, game.Score(secret, g), colored))
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}
	table.SetFooter([]string{"time", runs[0].summary(), runs[1].summary()})
	table.Render()
	return nil
}

// summary formats the outcome line shown in the table footer.
func (r solveRun) summary() string {
	outcome := fmt.Sprintf("solved in %d", len(r.guesses))
	if !r.solved {
		outcome = fmt.Sprintf("unsolved after %d", len(r.guesses))
	}
	return fmt.Sprintf("%s (%.3fs)", outcome, r.elapsed.Seconds())
}
