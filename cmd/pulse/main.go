package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/pulse"
	"github.com/tsawler/pulse/internal/config"
	"github.com/tsawler/pulse/internal/logging"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	if runInfo(os.Stdout, os.Stderr, cmd) {
		return
	}

	if err := config.LoadEnv(".env"); err != nil {
		fatal("%v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}
	logging.InitLogger(os.Stderr, cfg.LogLevel)

	analyzer, err := cfg.NewAnalyzer()
	if err != nil {
		fatal("load lexicon: %v", err)
	}
	slog.Debug("analyzer ready", "lexicon_entries", analyzer.Lexicon().Size(), "lexicon_path", cfg.LexiconPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var body any
	switch cmd {
	case "analyze":
		text, err := readText(args)
		if err != nil {
			fatal("analyze: %v", err)
		}
		body = newAnalysis(analyzer, text)

	case "aggregate":
		texts, err := readLines(positional(args))
		if err != nil {
			fatal("aggregate: %v", err)
		}
		slog.Info("aggregating", "texts", len(texts), "workers", cfg.Workers)
		agg, err := analyzer.AggregateContext(ctx, texts, cfg.Workers)
		if err != nil {
			fatal("aggregate: %v", err)
		}
		body = agg

	case "trend":
		current, history, err := parseScores(args)
		if err != nil {
			fatal("trend: %v", err)
		}
		body = pulse.AnalyzeTrend(current, history)

	case "cloud":
		limit := 0
		if v := flagValue(args, "--limit"); v != "" {
			if limit, err = strconv.Atoi(v); err != nil {
				fatal("cloud: invalid --limit %q", v)
			}
		}
		texts, err := readLines(positional(args))
		if err != nil {
			fatal("cloud: %v", err)
		}
		body = analyzer.WordCloud(texts, limit)

	case "compare":
		text, err := readText(args)
		if err != nil {
			fatal("compare: %v", err)
		}
		body = analyzer.Compare(text)

	case "breakdown":
		text, err := readText(args)
		if err != nil {
			fatal("breakdown: %v", err)
		}
		body = analyzer.AnalyzeDocument(text)

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage(os.Stderr)
		os.Exit(1)
	}

	if err := writeReport(os.Stdout, cmd, body); err != nil {
		fatal("write report: %v", err)
	}
}

// analysis is the analyze report body.
type analysis struct {
	pulse.Result
	Emoji    string        `json:"emoji"`
	Urgency  pulse.Urgency `json:"urgency"`
	Insights []string      `json:"insights"`
}

func newAnalysis(a *pulse.Analyzer, text string) analysis {
	r := a.Analyze(text)
	return analysis{
		Result:   r,
		Emoji:    pulse.EmojiFor(r.Score),
		Urgency:  pulse.AssessUrgency(r),
		Insights: a.ExtractInsights(r, text),
	}
}

type report struct {
	ID      string `json:"id"`
	Command string `json:"command"`
	Body    any    `json:"report"`
}

func writeReport(w io.Writer, cmd string, body any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report{ID: uuid.NewString(), Command: cmd, Body: body})
}

// runInfo handles the commands that need neither config nor a lexicon.
func runInfo(out, errOut io.Writer, cmd string) bool {
	switch cmd {
	case "version":
		fmt.Fprintf(out, "pulse v%s\n", version)
	case "help", "--help", "-h":
		usage(errOut)
	default:
		return false
	}
	return true
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `pulse v%s - employee feedback sentiment

Usage:
  pulse analyze [text...]              Score one text (stdin when omitted)
  pulse aggregate <file|->             Summarize one text per line
  pulse trend <current> [history...]   Compare a score with its history
  pulse cloud [--limit N] <file|->     Word cloud over one text per line
  pulse compare [text...]              Score with the lexicon and VADER
  pulse breakdown [text...]            Score each sentence of a document
  pulse version                        Print version
  pulse help                           Show this help

Configuration: ~/.config/pulse/config.toml (override with PULSE_CONFIG)
`, version)
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// positional returns the first argument that is neither a flag nor a flag value.
func positional(args []string) string {
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "--") {
			i++
			continue
		}
		return args[i]
	}
	return "-"
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pulse: "+format+"\n", args...)
	os.Exit(1)
}
