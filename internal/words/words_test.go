package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWordFileFiltersAndNormalizes(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "answers.txt")
	content := "CRANE\n  trace \nfour\ntoolong\ncr4ne\n\nspeed\n"
	req.NoError(os.WriteFile(path, []byte(content), 0o644))

	got, err := readWordFile(path)
	req.NoError(err)
	req.Equal([]string{"crane", "trace", "speed"}, got)
}

func TestReadWordFileMissing(t *testing.T) {
	req := require.New(t)
	_, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	req.Error(err)
}

func TestNormalizeLines(t *testing.T) {
	req := require.New(t)
	got := normalizeLines("# comment-ish garbage\nCRANE\nab\n\ntrace\n")
	req.Equal([]string{"crane", "trace"}, got)
}

func TestInitEmbeddedDefaults(t *testing.T) {
	req := require.New(t)
	req.NoError(Init(""))
	req.NotZero(Count())
	req.Len(Answers(), Count())

	for _, w := range Answers() {
		req.Len(w, WordLength)
		req.True(isAlpha(w), "word %q", w)
	}

	req.True(IsAnswer("crane"))
	req.True(IsAnswer("CRANE"))
	req.False(IsAnswer("zzzzz"))
}

func TestRandomAnswerIsSeedDeterministic(t *testing.T) {
	req := require.New(t)
	req.NoError(Init(""))

	a := RandomAnswer(rand.New(rand.NewSource(7)))
	b := RandomAnswer(rand.New(rand.NewSource(7)))
	req.Equal(a, b)
	req.True(IsAnswer(a))
}

func TestRandomAnswerNilSource(t *testing.T) {
	req := require.New(t)
	req.NoError(Init(""))
	// Callers without a seed requirement may pass nil.
	req.True(IsAnswer(RandomAnswer(nil)))
}
