package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
