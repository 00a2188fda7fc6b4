package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"deliveryfilter/cmd"
	"deliveryfilter/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()

	env := cmd.EnvFromLookup(os.LookupEnv)
	logger := logging.New(os.Stdout, env.LogPath, slog.LevelInfo)

	os.Exit(cmd.Run(context.Background(), os.Args[1:], env, logger))
}

// loadDotEnv runs before the log file path is known, so its failure goes to stderr only.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}
