// internal/solver/solver.go
//
// Solvers that play a known secret word optimally (or cheaply).
// Responsibilities:
//   - Filter candidate words against observed feedback.
//   - Minimax: pick the guess whose worst-case feedback partition over the
//     remaining candidates is smallest, restricting guesses to candidates.
//   - FirstCandidate: always guess the first remaining candidate (baseline).
//   - Solve: drive a strategy against a secret for up to six guesses.
//
// Minimax results are memoized per candidate set; see cache.go.
package solver

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle-cli/internal/game"
)

// MaxGuesses is the attempt limit shared with interactive play.
const MaxGuesses = 6

// ErrUnknownSecret is returned when the secret is not a candidate word.
var ErrUnknownSecret = errors.New("secret is not in the answer list")

// Strategy picks the next guess from the remaining candidate words.
type Strategy interface {
	// Next returns the next guess, or "" when no candidates remain.
	Next(candidates []string) string
	// Name identifies the strategy in output and logs.
	Name() string
}

// Minimax implements worst-case partition minimization over the remaining
// candidates. For each possible guess it partitions the candidates by the
// feedback they would produce and keeps the guess whose largest partition is
// smallest. A partition of size one cannot be improved, so the scan stops
// early when it finds one.
type Minimax struct {
	memo *memo
}

// NewMinimax constructs a Minimax strategy with an empty memo.
func NewMinimax() *Minimax {
	return &Minimax{memo: newMemo()}
}

// Name implements Strategy.
func (m *Minimax) Name() string { return "minimax" }

// Next implements Strategy.
func (m *Minimax) Next(candidates []string) string {
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return candidates[0]
	}

	key := memoKey(candidates)
	if g, ok := m.memo.get(key); ok {
		return g
	}

	best, bestWorst := "", len(candidates)+1
	for _, g := range candidates {
		partitions := make(map[string]int)
		for _, s := range candidates {
			partitions[feedbackKey(game.Score(s, g))]++
		}
		worst := lo.Max(lo.Values(partitions))
		if worst < bestWorst {
			best, bestWorst = g, worst
			if worst == 1 {
				break
			}
		}
	}

	m.memo.put(key, best)
	return best
}

// FirstCandidate is the no-lookahead baseline: it always guesses the first
// remaining candidate and relies on filtering alone to converge.
type FirstCandidate struct{}

// Name implements Strategy.
func (FirstCandidate) Name() string { return "first-candidate" }

// Next implements Strategy.
func (FirstCandidate) Next(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

// Filter keeps the candidates that would produce the observed marks if they
// were the answer. The secret always survives its own feedback, so repeated
// filtering can never eliminate it.
func Filter(candidates []string, guess string, marks []game.Mark) []string {
	want := feedbackKey(marks)
	return lo.Filter(candidates, func(w string, _ int) bool {
		return feedbackKey(game.Score(w, guess)) == want
	})
}

// Solve plays strategy s against secret, filtering candidates after each
// guess. It returns the guess sequence and whether the secret was found
// within MaxGuesses. The secret must be one of the candidates.
func Solve(secret string, s Strategy, candidates []string) ([]string, bool, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if !lo.Contains(candidates, secret) {
		return nil, false, ErrUnknownSecret
	}

	remaining := candidates
	var guesses []string
	for len(guesses) < MaxGuesses {
		g := s.Next(remaining)
		if g == "" {
			break
		}
		guesses = append(guesses, g)
		if g == secret {
			return guesses, true, nil
		}
		remaining = Filter(remaining, g, game.Score(secret, g))
	}
	return guesses, false, nil
}

// feedbackKey encodes marks compactly: miss=0, present=1, hit=2.
func feedbackKey(marks []game.Mark) string {
	b := make([]byte, len(marks))
	for i, m := range marks {
		switch m {
		case game.MarkHit:
			b[i] = '2'
		case game.MarkPresent:
			b[i] = '1'
		default:
			b[i] = '0'
		}
	}
	return string(b)
}

// memoKey canonicalizes a candidate set so lookups are order-independent.
func memoKey(candidates []string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}
