package bootstrap

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/tickreplay/internal/config"
	"github.com/appengine-ltd/tickreplay/internal/logging"
)

// ErrUnknownMode is returned for a mode name that matches nothing.
var ErrUnknownMode = errors.New("unknown mode")

const usageText = `usage: %s [flags] <mode> [path]

modes:
  record        record a live session (to -out, or TICKREPLAY_RECORDING_PATH)
  view PATH     print every event stored in a stream
  apply PATH    replay a stream without a window
  gui           run interactively without recording

flags:
`

// Main parses args (without the program name) and runs the selected mode
// against target. Logs go to stderr; mode output goes to stdout.
func Main(target Target, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(target.Name(), flag.ContinueOnError)
	fs.SetOutput(stdout)
	logLevel := fs.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	out := fs.String("out", cfg.RecordingPath, "stream written by record; a .zst suffix compresses it")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usageText, fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		return err
	}
	s := session{cfg: cfg, logger: logger, stdout: stdout}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return nil
	}
	name := strings.ToLower(rest[0])
	m, ok := parseMode(name)
	if !ok {
		fmt.Fprintf(stdout, "unknown mode %q", rest[0])
		if hint := suggestMode(name); hint != "" {
			fmt.Fprintf(stdout, ", did you mean %q?", hint)
		}
		fmt.Fprintln(stdout)
		fs.Usage()
		return fmt.Errorf("%w %q", ErrUnknownMode, rest[0])
	}

	switch m {
	case modeRecord:
		return s.record(target, *out)
	case modeGUI:
		return s.gui(target)
	}

	if len(rest) < 2 {
		fmt.Fprintf(stdout, "%s needs the path of a recorded stream: %s %s PATH\n", m, fs.Name(), m)
		return nil
	}
	path := rest[1]
	if m == modeView {
		return s.view(path)
	}
	return s.apply(target, path)
}

// suggestMode returns the closest mode name within a typo-sized distance.
func suggestMode(name string) string {
	best, bestDist := "", -1
	for _, m := range cliModes {
		cand := m.String()
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
