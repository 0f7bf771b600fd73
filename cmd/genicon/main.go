// Command genicon renders the 1024x1024 base icon and writes it to
// icon_1024.png in the working directory.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"appicon/icon"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger()

	if err := icon.Save(icon.File); err != nil {
		log.Fatal().Err(err).Msg("write icon")
	}
	log.Info().Str("file", icon.File).Msg("created icon")
}
