package app

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hekt/live-dictation/internal/presenter"
)

const (
	defaultModelPath = "models/vosk-model-en-us-0.42-gigaspeech"
	modelEnvVar      = "VOSK_MODEL_PATH"
)

var modelFlag = &cli.StringFlag{
	Name:    "model",
	Aliases: []string{"m"},
	Usage:   "Vosk model directory",
	EnvVars: []string{modelEnvVar},
	Value:   defaultModelPath,
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log and decoder logs",
	Value: false,
}

var widthFlag = &cli.IntFlag{
	Name:  "width",
	Usage: "Width of the status line in terminal cells",
	Value: presenter.DefaultWidth,
}

//
// Punctuation flags
//

var punctuateFlag = &cli.BoolFlag{
	Name:  "punctuate",
	Usage: "Insert Japanese punctuation into final results with MeCab",
	Value: false,
}

var mecabDicDirFlag = &cli.StringFlag{
	Name:  "mecab-dicdir",
	Usage: "MeCab dictionary directory, system default if empty",
}

//
// Microphone flags
//

var stallTimeoutFlag = &cli.DurationFlag{
	Name:  "stall-timeout",
	Usage: "Fail when the microphone delivers nothing for this long, 0 to disable",
	Value: 0 * time.Second,
}
