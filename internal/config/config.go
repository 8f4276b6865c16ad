// Package config loads run configuration for the tweetsent command from a
// YAML file, a .env file and TWEETSENT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/sentiment"
)

type Data struct {
	Train     string `yaml:"train"`
	Test      string `yaml:"test"`
	Truth     string `yaml:"truth"`
	Delimiter string `yaml:"delimiter"`
}

type Model struct {
	Threshold     float64 `yaml:"threshold"`
	PositiveBonus float64 `yaml:"positive_bonus"`
	Penalty       float64 `yaml:"penalty"`
}

type Labels struct {
	Positive uint8 `yaml:"positive"`
	Negative uint8 `yaml:"negative"`
}

type Tokenizer struct {
	ExtraStopWords []string `yaml:"extra_stop_words"`
	Punctuation    []string `yaml:"punctuation"`
}

type Output struct {
	TopWords int `yaml:"top_words"`
}

type Config struct {
	Data      Data      `yaml:"data"`
	Model     Model     `yaml:"model"`
	Labels    Labels    `yaml:"labels"`
	Tokenizer Tokenizer `yaml:"tokenizer"`
	Output    Output    `yaml:"output"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Data: Data{
			Train:     "./sent_analysis_data/train_dataset_20k.csv",
			Test:      "./sent_analysis_data/test_dataset_10k.csv",
			Truth:     "./sent_analysis_data/test_dataset_sentiment_10k.csv",
			Delimiter: ",",
		},
		Model: Model{
			Threshold:     sentiment.DefaultThreshold,
			PositiveBonus: sentiment.DefaultWeights().PositiveBonus,
			Penalty:       sentiment.DefaultWeights().Penalty,
		},
		Labels: Labels{
			Positive: uint8(sentiment.Positive),
			Negative: uint8(sentiment.Negative),
		},
		Tokenizer: Tokenizer{
			Punctuation: append([]string(nil), sentiment.DefaultPunctuation...),
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Environment variables consulted by ApplyEnv.
const (
	EnvTrain     = "TWEETSENT_TRAIN"
	EnvTest      = "TWEETSENT_TEST"
	EnvTruth     = "TWEETSENT_TRUTH"
	EnvThreshold = "TWEETSENT_THRESHOLD"
)

// ApplyEnv loads dotenv (if it exists) into the process environment and then
// overrides paths and the threshold from TWEETSENT_* variables. Variables
// already set in the environment take precedence over the dotenv file.
func (c *Config) ApplyEnv(dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	if v := os.Getenv(EnvTrain); v != "" {
		c.Data.Train = v
	}
	if v := os.Getenv(EnvTest); v != "" {
		c.Data.Test = v
	}
	if v := os.Getenv(EnvTruth); v != "" {
		c.Data.Truth = v
	}
	if v := os.Getenv(EnvThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		c.Model.Threshold = f
	}
	return nil
}

// Validate reports the first problem that would prevent a run.
func (c Config) Validate() error {
	switch {
	case c.Data.Train == "":
		return errors.New("training dataset path is empty")
	case c.Data.Test == "":
		return errors.New("test dataset path is empty")
	case c.Data.Truth == "":
		return errors.New("ground-truth dataset path is empty")
	case utf8.RuneCountInString(c.Data.Delimiter) != 1:
		return fmt.Errorf("delimiter must be a single character, got %q", c.Data.Delimiter)
	case c.Labels.Positive == c.Labels.Negative:
		return fmt.Errorf("positive and negative labels are both %d", c.Labels.Positive)
	case c.Output.TopWords < 0:
		return fmt.Errorf("top_words must not be negative, got %d", c.Output.TopWords)
	case !finite(c.Model.Threshold):
		return fmt.Errorf("threshold must be a finite number, got %v", c.Model.Threshold)
	case !finite(c.Model.PositiveBonus) || c.Model.PositiveBonus < 0:
		return fmt.Errorf("positive_bonus must be finite and not negative, got %v", c.Model.PositiveBonus)
	case !finite(c.Model.Penalty) || c.Model.Penalty < 0:
		return fmt.Errorf("penalty must be finite and not negative, got %v", c.Model.Penalty)
	}
	return nil
}

// finite reports whether f is neither NaN nor an infinity. Negative
// thresholds are allowed; word scores go below zero.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Pipeline converts the configuration into pipeline settings.
func (c Config) Pipeline() sentiment.PipelineConfig {
	delim, _ := utf8.DecodeRuneInString(c.Data.Delimiter)
	return sentiment.PipelineConfig{
		TrainPath: c.Data.Train,
		TestPath:  c.Data.Test,
		TruthPath: c.Data.Truth,
		Reader:    sentiment.ReaderConfig{Delimiter: delim},
		Weights: sentiment.Weights{
			PositiveBonus: c.Model.PositiveBonus,
			Penalty:       c.Model.Penalty,
		},
		Labels: sentiment.Labels{
			Positive: sentiment.Label(c.Labels.Positive),
			Negative: sentiment.Label(c.Labels.Negative),
		},
		Threshold: c.Model.Threshold,
		TopWords:  c.Output.TopWords,
	}
}

// NewTokenizer builds the tokenizer described by the configuration: the
// English stop words plus any extras, and the configured punctuation.
func (c Config) NewTokenizer() *sentiment.Tokenizer {
	return sentiment.NewTokenizer(
		sentiment.UsingStopWords(sentiment.EnglishStopWords().With(c.Tokenizer.ExtraStopWords...)),
		sentiment.UsingPunctuation(c.Tokenizer.Punctuation),
	)
}
