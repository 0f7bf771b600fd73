// Command mkico reads icon_1024.png from the working directory and
// packs it into a multi-resolution icon.ico.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"appicon/bundle"
	"appicon/icon"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger()

	if err := bundle.Build(icon.File, bundle.File); err != nil {
		log.Fatal().Err(err).Msg("pack icon")
	}
	log.Info().Str("file", bundle.File).Uints("sizes", bundle.Sizes).Msg("created icon bundle")
}
