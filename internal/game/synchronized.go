package game

import (
	"sync"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// Synchronized wraps a Controller with mutex protection so that several
// goroutines, such as a UI loop and a network reader, can drive one game.
type Synchronized struct {
	ctrl *Controller
	mu   sync.Mutex
}

// NewSynchronized creates a guarded controller. See New.
func NewSynchronized(cfg *config.Config) (*Synchronized, error) {
	ctrl, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Synchronized{ctrl: ctrl}, nil
}

// Wrap guards an existing controller. The caller must not use ctrl directly afterwards.
func Wrap(ctrl *Controller) *Synchronized {
	return &Synchronized{ctrl: ctrl}
}

// Move plays a move. See Controller.Move.
func (s *Synchronized) Move(m chess.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Move(m)
}

// MoveUCI plays a move given as UCI text. See Controller.MoveUCI.
func (s *Synchronized) MoveUCI(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.MoveUCI(text)
}

// Promote completes a pending promotion. See Controller.Promote.
func (s *Synchronized) Promote(kind chess.PieceType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Promote(kind)
}

// LegalMoves returns the legal moves from sq. See Controller.LegalMoves.
func (s *Synchronized) LegalMoves(sq chess.Coord) ([]chess.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.LegalMoves(sq)
}

// State returns the current phase of the game.
func (s *Synchronized) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.State()
}

// DrawReason returns why the game was drawn.
func (s *Synchronized) DrawReason() DrawReason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.DrawReason()
}

// Turn returns the side whose turn it is.
func (s *Synchronized) Turn() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Turn()
}

// Board returns a copy of the current board.
func (s *Synchronized) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Board()
}

// FEN returns the current position in FEN.
func (s *Synchronized) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.FEN()
}

// InCheck reports whether the side to move is in check.
func (s *Synchronized) InCheck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.InCheck()
}

// PendingPromotion returns the square of the pawn awaiting promotion.
func (s *Synchronized) PendingPromotion() (chess.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.PendingPromotion()
}

// History returns the moves played so far.
func (s *Synchronized) History() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.History()
}

// Winner returns the side that delivered mate.
func (s *Synchronized) Winner() (chess.Colour, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Winner()
}
