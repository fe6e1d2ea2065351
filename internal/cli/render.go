// internal/cli/render.go
//
// Terminal rendering for guess feedback.
// Colored output paints each letter on a Wordle-style tile: green for a hit,
// yellow for a present letter, a dark tile for a miss. Plain output (NO_COLOR,
// tests, dumb terminals) prints the letters followed by a marker line using
// '=' (hit), '+' (present) and '.' (miss).

package cli

import (
	"strings"

	"github.com/gookit/color"

	"github.com/robalobadob/wordle-cli/internal/game"
)

var (
	hitStyle     = color.New(color.FgWhite, color.BgGreen)
	presentStyle = color.New(color.FgBlack, color.BgYellow)
	missStyle    = color.New(color.FgWhite, color.BgBlack)
)

// renderRow formats one scored guess for the terminal.
func renderRow(guess string, marks []game.Mark, colored bool) string {
	if colored {
		var b strings.Builder
		for i, r := range strings.ToUpper(guess) {
			tile := " " + string(r) + " "
			switch marks[i] {
			case game.MarkHit:
				b.WriteString(hitStyle.Render(tile))
			case game.MarkPresent:
				b.WriteString(presentStyle.Render(tile))
			default:
				b.WriteString(missStyle.Render(tile))
			}
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(guess))
	b.WriteString("  ")
	for _, m := range marks {
		switch m {
		case game.MarkHit:
			b.WriteByte('=')
		case game.MarkPresent:
			b.WriteByte('+')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
