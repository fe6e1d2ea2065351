package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cli/internal/cli"
	"github.com/robalobadob/wordle-cli/internal/config"
	"github.com/robalobadob/wordle-cli/internal/daily"
	"github.com/robalobadob/wordle-cli/internal/words"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
	dailyMode := flag.Bool("daily", false, "play today's deterministic word")
	solveWord := flag.String("solve", "", "run the solvers against this answer instead of playing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(cfg.AnswersFile); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Int("answers", words.Count()).Msg("word list loaded")

	colored := !cfg.NoColor

	if *solveWord != "" {
		if err := cli.RunSolve(os.Stdout, *solveWord, words.Answers(), colored); err != nil {
			log.Fatal().Err(err).Msg("solve failed")
		}
		return
	}

	answer := ""
	if *dailyMode {
		answer = daily.Answer(time.Now(), cfg.DailySalt, words.Answers())
	}

	g, err := cli.Play(cli.Options{
		In:      os.Stdin,
		Out:     os.Stdout,
		Answer:  answer,
		Rng:     newRNG(*seed),
		Pool:    words.Answers(),
		Colored: colored,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Debug().
		Str("game_id", g.ID).
		Str("state", g.State()).
		Msg("session complete")
}

// newRNG builds a seeded source. Seed 0 derives one from the clock and logs
// it at info so any game can be replayed with -seed even under the default
// log level.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.Info().Int64("seed", seed).Msg("derived random seed")
	}
	return rand.New(rand.NewSource(seed))
}
