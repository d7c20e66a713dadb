package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hekt/live-dictation/internal/actions/listen"
	"github.com/hekt/live-dictation/internal/logger"
	"github.com/hekt/live-dictation/internal/recognizer/model"
)

const listenCommandName = "listen"

func NewListenCommand() *cli.Command {
	return &cli.Command{
		Name:  listenCommandName,
		Usage: "transcribe the default microphone until interrupted",
		Flags: []cli.Flag{
			modelFlag,
			debugFlag,
			widthFlag,
			punctuateFlag,
			mecabDicDirFlag,
			stallTimeoutFlag,
		},
		Action: func(cCtx *cli.Context) error {
			options := []listen.Option{
				listen.WithStallTimeout(cCtx.Duration(stallTimeoutFlag.Name)),
			}
			return runListen(cCtx, listen.Args{
				ModelPath: cCtx.String(modelFlag.Name),
			}, options...)
		},
	}
}

func NewTranscribeCommand() *cli.Command {
	return &cli.Command{
		Name:      "transcribe",
		Usage:     "replay a 16kHz mono 16-bit WAV file through the recognizer",
		ArgsUsage: "<file.wav>",
		Flags: []cli.Flag{
			modelFlag,
			debugFlag,
			widthFlag,
			punctuateFlag,
			mecabDicDirFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return fmt.Errorf("exactly one wav file must be specified, got %d", cCtx.NArg())
			}
			return runListen(cCtx, listen.Args{
				ModelPath: cCtx.String(modelFlag.Name),
				WAVPath:   cCtx.Args().First(),
			})
		},
	}
}

func runListen(cCtx *cli.Context, args listen.Args, options ...listen.Option) error {
	if cCtx.Bool(debugFlag.Name) {
		if err := setLogger(slog.LevelDebug); err != nil {
			return fmt.Errorf("failed to set logger: %w", err)
		}
		options = append(options, listen.WithDecoderLogs())
	}
	if cCtx.IsSet(widthFlag.Name) {
		options = append(options, listen.WithWidth(cCtx.Int(widthFlag.Name)))
	}
	if cCtx.Bool(punctuateFlag.Name) {
		options = append(options, listen.WithPunctuation(cCtx.String(mecabDicDirFlag.Name)))
	}

	return describe(listen.Run(cCtx.Context, args, options...))
}

// describe adds remediation hints to fatal startup errors.
func describe(err error) error {
	var loadErr *model.ModelLoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf(
			"%w\nEnsure the model folder exists and the path is correct (--%s or %s). Models: https://alphacephei.com/vosk/models",
			err, modelFlag.Name, modelEnvVar,
		)
	}
	return err
}

func setLogger(level slog.Level) error {
	logger, err := logger.NewDebugLogger(
		fmt.Sprintf("output/log-%d.log", time.Now().Unix()),
		level,
		os.Stderr,
	)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(logger)
	return nil
}
