// perft counts the move paths from a chess position, optionally split by
// root move and cross-checked against an independent move generator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Exit codes.
const (
	exitOK          = 0
	exitMismatch    = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var (
	okColour   = color.New(color.FgGreen)
	failColour = color.New(color.FgRed, color.Bold)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the tool and returns its exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}

	cfg := config.NewConfig()
	cfg.LogFile = stderr
	cfg.OutputFile = stdout
	applyFlags(cfg, opts)

	closeLog, err := setupLogFile(cfg, opts.logFile)
	if err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}

	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		fmt.Fprintf(stderr, "perft: %v\n", err)
		return exitUsage
	}

	cfg.Logf(config.Moves, "position %s, depth %d, %d workers", engine.BoardToFEN(board), cfg.Perft.Depth, cfg.Perft.Workers)

	if cfg.Perft.Divide {
		return runDivide(ctx, cfg, board)
	}
	return runTotal(ctx, cfg, board)
}

// runTotal prints the node count for the whole tree.
func runTotal(ctx context.Context, cfg *config.Config, board *chess.Board) int {
	perft := cfg.Perft
	start := time.Now()
	nodes, err := engine.PerftParallel(ctx, board, perft.Depth, perft.Workers)
	if err != nil {
		return searchFailed(cfg, err)
	}
	logTiming(cfg, nodes, time.Since(start))
	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", perft.Depth, nodes)

	if !perft.Verify {
		return exitOK
	}
	ref := dragontoothBoard(board)
	want := referencePerft(&ref, perft.Depth)
	if nodes != want {
		failColour.Fprintf(cfg.OutputFile, "verify FAILED: got %d, reference %d\n", nodes, want)
		return exitMismatch
	}
	okColour.Fprintf(cfg.OutputFile, "verify ok: %d nodes\n", nodes)
	return exitOK
}

// runDivide prints per-root-move counts in move order, then the total.
func runDivide(ctx context.Context, cfg *config.Config, board *chess.Board) int {
	perft := cfg.Perft
	start := time.Now()
	entries, err := engine.PerftDivideParallel(ctx, board, perft.Depth, perft.Workers)
	if err != nil {
		return searchFailed(cfg, err)
	}

	counts := make(map[string]uint64, len(entries))
	var total uint64
	for _, e := range entries {
		counts[e.Move.String()] = e.Nodes
		total += e.Nodes
	}
	logTiming(cfg, total, time.Since(start))
	writeDivide(cfg.OutputFile, counts, total)

	if !perft.Verify {
		return exitOK
	}
	diffs := compareDivide(counts, referenceDivide(board, perft.Depth))
	if len(diffs) == 0 {
		okColour.Fprintf(cfg.OutputFile, "verify ok: %d nodes\n", total)
		return exitOK
	}
	for _, d := range diffs {
		failColour.Fprintf(cfg.OutputFile, "verify FAILED: %s got %d, reference %d\n", d.move, d.got, d.want)
	}
	return exitMismatch
}

func searchFailed(cfg *config.Config, err error) int {
	fmt.Fprintf(cfg.LogFile, "perft: %v\n", err)
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return exitUsage
}

func writeDivide(w io.Writer, counts map[string]uint64, total uint64) {
	moves := maps.Keys(counts)
	slices.Sort(moves)
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, counts[m])
	}
	fmt.Fprintf(w, "\nTotal: %d\n", total)
}

func logTiming(cfg *config.Config, nodes uint64, elapsed time.Duration) {
	nps := float64(nodes) / elapsed.Seconds()
	cfg.Logf(config.Outcomes, "%d nodes in %s (%.0f nps)", nodes, elapsed.Round(time.Millisecond), nps)
}
