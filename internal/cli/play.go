// internal/cli/play.go
//
// Interactive game loop.
// Responsibilities:
//   - Prompt on Out, read guesses line-by-line from In (blocking).
//   - Re-prompt on malformed guesses without consuming an attempt.
//   - Render per-letter feedback after each valid guess.
//   - Honor the "hint" command: suggest a minimax guess consistent with the
//     feedback seen so far.
//
// Reads block until the user provides a line; there are no timeouts and no
// cancellation. An exhausted In before the game ends is an input error.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cli/internal/game"
	"github.com/robalobadob/wordle-cli/internal/solver"
)

// hintCommand is safe as a command word: guesses are five letters, this is four.
const hintCommand = "hint"

// Options configures a single interactive session.
type Options struct {
	In      io.Reader  // guess input, typically os.Stdin
	Out     io.Writer  // prompts and feedback, typically os.Stdout
	Answer  string     // fixed answer; empty draws a random one from Rng
	Rng     *rand.Rand // answer selection source (seedable for replays); nil seeds from the clock
	Pool    []string   // candidate pool backing the hint command
	Colored bool       // ANSI tile rendering
}

// Play runs one session to completion and returns the finished game.
// A non-nil error means input failed before the game could finish.
func Play(opts Options) (*game.Game, error) {
	g := game.New(opts.Answer, opts.Rng)
	log.Debug().Str("game_id", g.ID).Msg("game started")

	hinter := solver.NewMinimax()
	remaining := opts.Pool

	fmt.Fprintf(opts.Out, "Guess the %d-letter word. You have %d tries. Type %q for a suggestion.\n",
		g.Cols, g.Rows, hintCommand)

	sc := bufio.NewScanner(opts.In)
	for !g.Finished {
		fmt.Fprintf(opts.Out, "Guess %d/%d: ", len(g.Guesses)+1, g.Rows)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return g, fmt.Errorf("read guess: %w", err)
			}
			return g, fmt.Errorf("read guess: %w", io.ErrUnexpectedEOF)
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, hintCommand) {
			suggestHint(opts.Out, hinter, remaining)
			continue
		}

		marks, state, err := g.ApplyGuess(line)
		if errors.Is(err, game.ErrInvalidGuess) {
			fmt.Fprintf(opts.Out, "Enter exactly %d letters (a-z).\n", g.Cols)
			continue
		}
		if err != nil {
			return g, err
		}

		guess := g.Guesses[len(g.Guesses)-1]
		fmt.Fprintln(opts.Out, renderRow(guess, marks, opts.Colored))
		remaining = solver.Filter(remaining, guess, marks)

		switch state {
		case "won":
			fmt.Fprintf(opts.Out, "You got it in %d/%d.\n", len(g.Guesses), g.Rows)
		case "lost":
			fmt.Fprintf(opts.Out, "Out of tries. The word was %q.\n", strings.ToUpper(g.Answer))
		}
	}

	log.Debug().
		Str("game_id", g.ID).
		Str("state", g.State()).
		Int("guesses", len(g.Guesses)).
		Msg("game finished")
	return g, nil
}

// suggestHint prints a minimax suggestion from the remaining candidates.
func suggestHint(out io.Writer, hinter *solver.Minimax, remaining []string) {
	if len(remaining) == 0 {
		fmt.Fprintln(out, "No hint available.")
		return
	}
	fmt.Fprintf(out, "Try %q (%d candidate(s) left).\n",
		strings.ToUpper(hinter.Next(remaining)), len(remaining))
}
