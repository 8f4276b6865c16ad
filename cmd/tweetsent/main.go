// Command tweetsent trains word polarity scores on a labeled tweet corpus,
// predicts sentiment for a test set and prints the prediction accuracy.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/sentiment"
	"github.com/tsawler/sentiment/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("tweetsent", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	dotenv := fs.String("env", ".env", "path to a dotenv file; ignored if missing")
	train := fs.String("train", "", "training dataset (overrides config)")
	test := fs.String("test", "", "test dataset (overrides config)")
	truth := fs.String("truth", "", "ground-truth dataset (overrides config)")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			return 1
		}
		logger = l
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	if err := cfg.ApplyEnv(*dotenv); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	if *train != "" {
		cfg.Data.Train = *train
	}
	if *test != "" {
		cfg.Data.Test = *test
	}
	if *truth != "" {
		cfg.Data.Truth = *truth
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	logger.Debug("configuration loaded",
		zap.String("train", cfg.Data.Train),
		zap.String("test", cfg.Data.Test),
		zap.String("truth", cfg.Data.Truth),
		zap.Float64("threshold", cfg.Model.Threshold))

	p := sentiment.NewPipeline(cfg.Pipeline(), cfg.NewTokenizer(), logger, os.Stdout)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
