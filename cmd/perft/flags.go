// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// options holds the parsed command line.
type options struct {
	fen       string
	depth     int
	divide    bool
	workers   int
	verify    bool
	logFile   string
	verbosity int
}

// parseFlags parses args (without the program name) into options.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.fen, "fen", engine.InitialFEN, "Position to search (FEN)")
	fs.IntVar(&opts.depth, "depth", 0, "Perft depth (required)")
	fs.BoolVar(&opts.divide, "divide", false, "Print per-move node counts at the root")
	fs.IntVar(&opts.workers, "workers", 0, "Worker goroutines (0 = NumCPU)")
	fs.BoolVar(&opts.verify, "verify", false, "Compare counts against the dragontoothmg move generator")
	fs.StringVar(&opts.logFile, "log", "", "Write log lines to this file (default: stderr)")
	fs.IntVar(&opts.verbosity, "v", config.Outcomes, "Verbosity: 0 silent, 1 outcomes, 2 per move")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: perft -depth N [options]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// applyFlags copies the parsed options onto cfg.
func applyFlags(cfg *config.Config, opts *options) {
	cfg.Verbosity = opts.verbosity
	cfg.StartFEN = opts.fen
	cfg.Perft.Depth = opts.depth
	cfg.Perft.Divide = opts.divide
	cfg.Perft.Workers = opts.workers
	if opts.workers == 0 {
		cfg.Perft.Workers = runtime.NumCPU()
	}
	cfg.Perft.Verify = opts.verify
}

// setupLogFile points cfg at the requested log file. The returned
// function closes it.
func setupLogFile(cfg *config.Config, path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: path comes from the user's own command line
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", path, err)
	}
	cfg.LogFile = file
	return func() { _ = file.Close() }, nil
}
