package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/subosito/gotenv"

	"github.com/tsawler/pulse"
)

// Config holds all pulse CLI configuration.
type Config struct {
	LogLevel    string `toml:"log_level"`
	LexiconPath string `toml:"lexicon_path"`
	Workers     int    `toml:"workers"`

	Analyzer AnalyzerConfig `toml:"analyzer"`
}

// AnalyzerConfig is the [analyzer] table.
type AnalyzerConfig struct {
	NegationWindow        int    `toml:"negation_window"`
	MaxKeywords           int    `toml:"max_keywords"`
	ModifierSkipsNegation bool   `toml:"modifier_skips_negation"`
	StripMarkdown         bool   `toml:"strip_markdown"`
	StopWords             string `toml:"stop_words"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	def := pulse.DefaultConfig()
	return Config{
		LogLevel: "info",
		Workers:  0,
		Analyzer: AnalyzerConfig{
			NegationWindow:        def.NegationWindow,
			MaxKeywords:           def.MaxKeywords,
			ModifierSkipsNegation: def.ModifierSkipsNegation,
			StripMarkdown:         def.StripMarkdown,
			StopWords:             string(def.StopWords),
		},
	}
}

// LoadEnv reads a .env file into the process environment when one exists.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("load env %s: %w", path, err)
	}
	return nil
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	if v := os.Getenv("PULSE_LEXICON"); v != "" {
		cfg.LexiconPath = v
	}
	if v := os.Getenv("PULSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.LexiconPath = expandHome(cfg.LexiconPath)
	return cfg, nil
}

// PulseConfig converts the [analyzer] table to a pulse.Config.
func (c Config) PulseConfig() pulse.Config {
	return pulse.Config{
		NegationWindow:        c.Analyzer.NegationWindow,
		MaxKeywords:           c.Analyzer.MaxKeywords,
		ModifierSkipsNegation: c.Analyzer.ModifierSkipsNegation,
		StripMarkdown:         c.Analyzer.StripMarkdown,
		StopWords:             pulse.Language(c.Analyzer.StopWords),
	}
}

// NewAnalyzer builds the analyzer described by c, loading the lexicon
// extension when one is configured.
func (c Config) NewAnalyzer() (*pulse.Analyzer, error) {
	lex := pulse.DefaultLexicon()
	if c.LexiconPath != "" {
		var err error
		if lex, err = pulse.LoadLexicon(c.LexiconPath); err != nil {
			return nil, err
		}
	}
	return pulse.NewAnalyzer(lex, c.PulseConfig()), nil
}

func configPaths() []string {
	var paths []string

	if p := os.Getenv("PULSE_CONFIG"); p != "" {
		paths = append(paths, expandHome(p))
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pulse", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "pulse", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
