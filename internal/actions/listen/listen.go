package listen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hekt/live-dictation/internal/audio"
	"github.com/hekt/live-dictation/internal/audio/portaudio"
	"github.com/hekt/live-dictation/internal/dictation"
	"github.com/hekt/live-dictation/internal/presenter"
	"github.com/hekt/live-dictation/internal/punctuator/mecab"
	"github.com/hekt/live-dictation/internal/recognizer/model"
	"github.com/hekt/live-dictation/internal/recognizer/vosk"
	"github.com/hekt/live-dictation/internal/recognizer/voskmodel"
)

var separator = strings.Repeat("-", 53)

type Args struct {
	ModelPath string
	// WAVPath replays a file instead of opening the microphone.
	WAVPath string
}

func applyOptions(opts []Option) (*options, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return options, nil
}

func Run(ctx context.Context, args Args, opts ...Option) error {
	if args.ModelPath == "" {
		return errors.New("model path must be specified")
	}
	options, err := applyOptions(opts)
	if err != nil {
		return err
	}

	stdout := os.Stdout
	printBanner(stdout, args)

	voskmodel.SetLogLevel(options.voskLogLevel)

	recognizerOpts := make([]vosk.Option, 0, 1)
	if options.punctuate {
		p, release, err := mecab.Open(options.mecabDicDir)
		if err != nil {
			return &audio.DependencyMissingError{
				Backend: "MeCab",
				Remedy:  "install mecab with an IPA dictionary or pass --mecab-dicdir",
				Err:     err,
			}
		}
		defer release()
		recognizerOpts = append(recognizerOpts, vosk.WithPunctuator(p))
	}

	loadEngine := func() (dictation.Engine, error) {
		session, err := voskmodel.Load(args.ModelPath, audio.SampleRate)
		if err != nil {
			return nil, err
		}
		recognizer, err := vosk.NewRecognizer(session, recognizerOpts...)
		if err != nil {
			return nil, &model.ModelLoadError{Path: args.ModelPath, Err: err}
		}

		fmt.Fprintln(stdout, "Model loaded successfully. Starting audio input.")
		fmt.Fprintln(stdout, separator)
		return recognizer, nil
	}

	var opener audio.Opener = portaudio.NewOpener()
	if args.WAVPath != "" {
		opener = &audio.WAVOpener{Path: args.WAVPath}
	}

	d, err := dictation.New(
		loadEngine,
		opener,
		presenter.New(stdout, options.width),
		dictation.WithStallTimeout(options.stallTimeout),
	)
	if err != nil {
		return err
	}

	if err := d.Start(ctx); err != nil {
		return err
	}

	// Leave the prompt line so the shell starts on a fresh line.
	fmt.Fprintln(stdout)
	return nil
}

func printBanner(w io.Writer, args Args) {
	fmt.Fprintln(w, "--- Real-time Vosk Transcription ---")
	fmt.Fprintf(w, "Model: %s\n", args.ModelPath)
	if args.WAVPath != "" {
		fmt.Fprintf(w, "Input: %s\n", args.WAVPath)
	} else {
		fmt.Fprintln(w, "Input: default microphone (Ctrl+C to stop)")
	}
	fmt.Fprintln(w, separator)
}
