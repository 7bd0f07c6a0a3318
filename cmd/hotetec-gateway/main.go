package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	red := color.New(color.FgRed, color.Bold)
	var perr *derr.ProviderError
	if errors.As(err, &perr) {
		red.Fprintf(os.Stderr, "error %s: ", perr.Code)
		fmt.Fprintln(os.Stderr, perr.Text)
		if perr.Err != nil {
			color.New(color.Faint).Fprintln(os.Stderr, perr.Err.Error())
		}
		return
	}
	red.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
