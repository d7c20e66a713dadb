package app

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hekt/live-dictation/internal/logger"
)

func New() *cli.App {
	return &cli.App{
		Name:           "dictate",
		Usage:          "print live transcriptions of your microphone with an offline Vosk model",
		DefaultCommand: listenCommandName,
		Before: func(cCtx *cli.Context) error {
			slog.SetDefault(logger.NewConsoleLogger(os.Stderr, slog.LevelWarn))
			return nil
		},
		Commands: []*cli.Command{
			NewListenCommand(),
			NewTranscribeCommand(),
		},
	}
}
