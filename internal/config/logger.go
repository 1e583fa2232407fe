package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger points the global zerolog logger at w as plain console text,
// keeping stdout free for command output. A nil w means os.Stderr.
func InitLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	})
}

// SetLogLevel applies the level from Config.Level; --debug or
// AGRISMART_DEBUG lowers it to debug.
func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
