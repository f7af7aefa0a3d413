// Package game provides the game state controller that sequences turns,
// pending promotions and terminal outcomes on top of the rules engine.
package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// Controller owns the board of one game and enforces turn order.
//
// A pawn move to the last rank made without a promotion piece leaves the
// controller in AwaitingPromotion: the board already shows the pawn on its
// new square, but the turn is not complete until Promote succeeds.
// A Controller is not safe for concurrent use; see Synchronized.
type Controller struct {
	cfg   *config.Config
	board *chess.Board

	state      State
	drawReason DrawReason
	pending    chess.Coord

	history     []chess.Move
	repetitions *hashing.RepetitionTable
}

// New creates a controller for cfg.StartFEN, or the standard initial
// position when it is empty. A nil cfg uses config.NewConfig().
func New(cfg *config.Config) (*Controller, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	fen := cfg.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	return NewFromFEN(cfg, fen)
}

// NewFromFEN creates a controller for the given position. The position is
// evaluated at once, so a loaded mate or stalemate is already terminal.
func NewFromFEN(cfg *config.Config, fen string) (*Controller, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	c := &Controller{
		cfg:         cfg,
		board:       board,
		repetitions: hashing.NewRepetitionTable(),
	}
	cfg.Logf(config.Moves, "new game: %s", fen)
	c.repetitions.Add(board)
	c.evaluate()
	return c, nil
}

// State returns the current phase of the game.
func (c *Controller) State() State {
	return c.state
}

// DrawReason returns why the game was drawn, NoDraw otherwise.
func (c *Controller) DrawReason() DrawReason {
	return c.drawReason
}

// Turn returns the side whose turn it is. While a promotion is pending
// this is the side that must choose the piece.
func (c *Controller) Turn() chess.Colour {
	if c.state == AwaitingPromotion {
		return c.board.ToMove.Opposite()
	}
	return c.board.ToMove
}

// Board returns a copy of the current board.
func (c *Controller) Board() *chess.Board {
	return c.board.Copy()
}

// FEN returns the current position in FEN.
func (c *Controller) FEN() string {
	return engine.BoardToFEN(c.board)
}

// InCheck reports whether the side to move on the board is in check.
func (c *Controller) InCheck() bool {
	return engine.IsInCheck(c.board, c.board.ToMove)
}

// PendingPromotion returns the square of the pawn awaiting promotion.
func (c *Controller) PendingPromotion() (chess.Coord, bool) {
	if c.state != AwaitingPromotion {
		return chess.Coord{}, false
	}
	return c.pending, true
}

// History returns the completed and pending moves played so far.
func (c *Controller) History() []chess.Move {
	return slices.Clone(c.history)
}

// Winner returns the side that delivered mate.
func (c *Controller) Winner() (chess.Colour, bool) {
	if c.state != Checkmate {
		return chess.White, false
	}
	return c.board.ToMove.Opposite(), true
}

// LegalMoves returns the legal moves of the piece on sq for the side to
// move. The boolean is false when nothing can be selected there, which
// includes every square while the controller is not awaiting a move.
func (c *Controller) LegalMoves(sq chess.Coord) ([]chess.Move, bool) {
	if c.state != AwaitingMove {
		return nil, false
	}
	return engine.LegalMoves(c.board, sq, c.board.ToMove)
}

// Move plays the legal move matching m's squares and promotion piece.
// Flags on m are ignored; the generated move supplies them.
func (c *Controller) Move(m chess.Move) error {
	if err := c.checkAwaitingMove(); err != nil {
		return c.moveError(m.String(), err)
	}
	legal, err := engine.FindMove(c.board, m.From, m.To, m.Promotion)
	if err != nil {
		return c.moveError(m.String(), err)
	}
	return c.play(legal)
}

// MoveUCI plays a move given in UCI long algebraic form, e.g. "e2e4".
func (c *Controller) MoveUCI(text string) error {
	if err := c.checkAwaitingMove(); err != nil {
		return c.moveError(text, err)
	}
	legal, err := engine.ParseUCIMove(c.board, text)
	if err != nil {
		return c.moveError(text, err)
	}
	return c.play(legal)
}

// Promote completes a pending promotion with the given piece type.
func (c *Controller) Promote(kind chess.PieceType) error {
	text := fmt.Sprintf("promote=%v", kind)
	switch {
	case c.state.IsTerminal():
		return c.moveError(text, errors.ErrGameOver)
	case c.state != AwaitingPromotion:
		return c.moveError(text, errors.Wrap(errors.ErrIllegalMove, "no promotion pending"))
	}

	if err := engine.Promote(c.board, c.pending, kind); err != nil {
		return c.moveError(text, err)
	}
	last := &c.history[len(c.history)-1]
	last.Promotion = kind

	c.state = AwaitingMove
	c.completeTurn(*last)
	return nil
}

func (c *Controller) checkAwaitingMove() error {
	switch {
	case c.state.IsTerminal():
		return errors.ErrGameOver
	case c.state == AwaitingPromotion:
		return errors.ErrPromotionPending
	}
	return nil
}

// play applies a generated legal move.
func (c *Controller) play(m chess.Move) error {
	if err := engine.ApplyMove(c.board, m); err != nil {
		return c.moveError(m.String(), err)
	}
	c.history = append(c.history, m)

	if !m.IsPromotion() && engine.CanPromote(c.board, m.To) {
		c.state = AwaitingPromotion
		c.pending = m.To
		c.cfg.Logf(config.Moves, "ply %d: %v, promotion pending on %v", len(c.history), m, m.To)
		return nil
	}

	c.completeTurn(m)
	return nil
}

// completeTurn records the finished position and evaluates the outcome.
func (c *Controller) completeTurn(m chess.Move) {
	c.cfg.Logf(config.Moves, "ply %d: %v", len(c.history), m)
	c.repetitions.Add(c.board)
	c.evaluate()
}

// evaluate sets the state for the side to move: mate or stalemate when it
// has no legal move, else the first enabled draw rule that applies.
func (c *Controller) evaluate() {
	side := c.board.ToMove
	draw := c.cfg.Draw

	switch engine.PositionOutcome(c.board) {
	case engine.Checkmated:
		c.state = Checkmate
		c.cfg.Logf(config.Outcomes, "checkmate: %v wins", side.Opposite())
		c.logSummary()
		return
	case engine.Stalemated:
		c.state = Stalemate
		c.cfg.Logf(config.Outcomes, "stalemate: %v has no legal move", side)
		c.logSummary()
		return
	}

	switch {
	case draw.FiftyMoveRule && engine.IsFiftyMoveDraw(c.board, draw.FiftyMoveLimit):
		c.setDraw(FiftyMove)
		return
	case draw.InsufficientMaterial && engine.HasInsufficientMaterial(c.board):
		c.setDraw(InsufficientMaterial)
		return
	case draw.Repetition && c.repetitions.Count(c.board) >= draw.RepetitionLimit:
		c.setDraw(Repetition)
		return
	}

	c.state = AwaitingMove
	if c.cfg.Verbosity >= config.Moves {
		c.cfg.Logf(config.Moves, "%v to move: %s", side, describeMoves(engine.AllLegalMoves(c.board, side)))
	}
}

func (c *Controller) setDraw(reason DrawReason) {
	c.state = Draw
	c.drawReason = reason
	c.cfg.Logf(config.Outcomes, "draw: %v", reason)
	c.logSummary()
}

// logSummary reports the positions seen once the game has ended.
func (c *Controller) logSummary() {
	r := c.repetitions
	c.cfg.Logf(config.Outcomes, "positions: %d recorded, %d distinct, most repeated %d times",
		r.Len(), r.UniqueCount(), r.MaxCount())
}

// moveError wraps err with the ply, move text and position.
func (c *Controller) moveError(text string, err error) error {
	ply := len(c.history) + 1
	if c.state == AwaitingPromotion {
		ply = len(c.history)
	}
	return &errors.MoveError{
		Err:      err,
		PlyNum:   ply,
		MoveText: text,
		FEN:      engine.BoardToFEN(c.board),
	}
}

// describeMoves lists moves grouped by origin square, e.g. "b1:a3,c3 g1:f3,h3".
func describeMoves(moves []chess.Move) string {
	byOrigin := make(map[string][]string)
	for _, m := range moves {
		from := m.From.String()
		byOrigin[from] = append(byOrigin[from], strings.TrimPrefix(m.String(), from))
	}

	origins := maps.Keys(byOrigin)
	slices.Sort(origins)

	parts := make([]string, 0, len(origins))
	for _, from := range origins {
		targets := byOrigin[from]
		slices.Sort(targets)
		parts = append(parts, from+":"+strings.Join(targets, ","))
	}
	return strings.Join(parts, " ")
}
