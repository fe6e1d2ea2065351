// internal/words/words.go
//
// Word list management for the game and solver.
//
// Responsibilities:
//   - Load the answer list from a configured file or fall back to the
//     embedded default list.
//   - Maintain a lookup set for IsAnswer.
//   - Supply RandomAnswer drawn from an injected random source.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
)

// WordLength is the fixed answer/guess length.
const WordLength = 5

// Embedded default list (ensures the game runs even if no file is configured).
//
//go:embed default_small_answers.txt
var embeddedAnswers string

var (
	initOnce   sync.Once
	answers    []string            // canonical answers
	answersSet map[string]struct{} // answers only
	initialErr error
)

// Init loads the answer list exactly once. If path is non-empty the list is
// read from that file, otherwise the embedded default is used.
// Returns an error if the list ends up empty.
func Init(path string) error {
	initOnce.Do(func() {
		var list []string
		if path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			list = normalizeLines(embeddedAnswers)
		}

		answers = list
		answersSet = toSet(list)

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a uniformly random answer drawn from rng.
// A nil rng falls back to a clock-seeded source, so callers without a
// reproducibility requirement may pass nil. If answers are not loaded yet or
// empty, falls back to "crane".
func RandomAnswer(rng *rand.Rand) string {
	if len(answers) == 0 {
		return "crane"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return answers[rng.Intn(len(answers))]
}

// Answers returns the loaded answer list. Callers must not mutate it.
func Answers() []string { return answers }

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Count returns the number of loaded answers.
func Count() int { return len(answers) }
