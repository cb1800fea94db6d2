// Package logging builds the program's logger.
//
// A logger writes every record to two sinks: the console, optionally
// coloured and optionally restricted to errors, and an append-only log
// file in plain text. Both sinks are logrus hooks, so the logger itself
// discards its default output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultName is the logger name used when Options.Name is empty.
const DefaultName = "tally"

// Options configures New.
type Options struct {
	Name    string
	Level   string    // logrus level name; empty means info
	Console io.Writer // nil disables the console sink
	Color   bool      // colour the console level column
	Quiet   bool      // console shows errors only
	File    string    // empty disables the file sink
}

// New creates a logger from opts. The returned close function releases the
// log file and is safe to call when no file was opened.
func New(opts Options) (*logrus.Logger, func() error, error) {
	noop := func() error { return nil }

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, noop, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(level)
	logger.SetFormatter(&Formatter{Name: name})

	if opts.Console != nil {
		consoleLevel := level
		if opts.Quiet && consoleLevel > logrus.ErrorLevel {
			consoleLevel = logrus.ErrorLevel
		}
		logger.AddHook(&writerHook{
			w:         opts.Console,
			formatter: &Formatter{Name: name, Color: opts.Color},
			levels:    levelsUpTo(consoleLevel),
		})
	}

	if opts.File == "" {
		return logger, noop, nil
	}

	f, err := openLogFile(opts.File)
	if err != nil {
		return nil, noop, err
	}
	logger.AddHook(&writerHook{
		w:         f,
		formatter: &Formatter{Name: name},
		levels:    levelsUpTo(level),
	})

	return logger, f.Close, nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// levelsUpTo returns every level at least as severe as max.
func levelsUpTo(max logrus.Level) []logrus.Level {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= max {
			levels = append(levels, l)
		}
	}
	return levels
}

// writerHook formats entries with its own formatter and writes them to w.
type writerHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func (h *writerHook) Levels() []logrus.Level { return h.levels }

func (h *writerHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(b)
	return err
}
