package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hekt/live-dictation/internal/app"
)

func main() {
	// Flags read VOSK_MODEL_PATH etc. at parse time, so .env must be loaded first.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	app := app.New()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
