package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var stdin io.Reader = os.Stdin

// readText joins args into one text, or reads all of stdin when there are none.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// readLines reads one text per non-blank line from path, or stdin for "-".
func readLines(path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return scanLines(r)
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// parseScores reads the current score followed by the history, oldest first.
// Scores may be separate arguments or comma-separated.
func parseScores(args []string) (float64, []float64, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("usage: pulse trend <current> [history...]")
	}
	var scores []float64
	for _, arg := range args {
		for _, a := range strings.Split(arg, ",") {
			if a = strings.TrimSpace(a); a == "" {
				continue
			}
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid score %q: %w", a, err)
			}
			scores = append(scores, v)
		}
	}
	if len(scores) == 0 {
		return 0, nil, fmt.Errorf("usage: pulse trend <current> [history...]")
	}
	return scores[0], scores[1:], nil
}
