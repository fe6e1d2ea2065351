package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestNewRNGLogsDerivedSeedAtDefaultLevel(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel) // the LOG_LEVEL default
	defer func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	}()

	req.NotNil(newRNG(0))
	req.Contains(buf.String(), `"seed"`)
	req.Contains(buf.String(), "derived random seed")

	// An explicit seed is already known to the user; nothing is logged.
	buf.Reset()
	req.NotNil(newRNG(42))
	req.Empty(buf.String())
}

func TestNewRNGExplicitSeedIsDeterministic(t *testing.T) {
	req := require.New(t)
	a, b := newRNG(7), newRNG(7)
	for i := 0; i < 10; i++ {
		req.Equal(a.Int63(), b.Int63())
	}
}
