package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/yumyai/cgcfinder/cmd"
	"github.com/yumyai/cgcfinder/logger"
	"go.uber.org/zap/zapcore"
)

func main() {

	// Stderr only until the command has read its settings.
	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		panic(err)
	}

	// Try load env, CGC_* values are picked up by viper
	if dotenvErr := godotenv.Load(); dotenvErr != nil {
		logger.Debug("No .env found, using local environment")
	}

	err := cmd.Execute()
	logger.Sync() // Make sure that the buffered is flushed.
	if err != nil {
		os.Exit(1)
	}
}
