// Package main provides the entry point for the OpenAPI upgrade CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/GabrielNunesIT/openapi-upgrade/internal/cli"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := cli.New(log)
	if err := app.Execute(); err != nil {
		log.Error().Err(err).Msg("conversion aborted")
		os.Exit(1)
	}
}
