// Command lightbox is a desktop image viewer built on the lightbox engine.
package main

import (
	"os"

	"github.com/phanxgames/lightbox/internal/cli"
	"github.com/phanxgames/lightbox/internal/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		log := logging.NewFromEnv()
		log.Error().Err(err).Msg("lightbox failed")
		os.Exit(1)
	}
}
