package game

import (
	"sync"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestSynchronized_Game(t *testing.T) {
	g, err := NewSynchronized(quietConfig())
	if err != nil {
		t.Fatalf("NewSynchronized() error = %v", err)
	}
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if err := g.MoveUCI(m); err != nil {
			t.Fatalf("MoveUCI(%q) error = %v", m, err)
		}
	}
	if g.State() != Checkmate {
		t.Errorf("State() = %v, want %v", g.State(), Checkmate)
	}
	if winner, ok := g.Winner(); !ok || winner != chess.Black {
		t.Errorf("Winner() = %v, %v, want Black, true", winner, ok)
	}
	if !g.InCheck() {
		t.Error("InCheck() = false after mate")
	}
	if len(g.History()) != 4 {
		t.Errorf("len(History()) = %d, want 4", len(g.History()))
	}
	err = g.Move(chess.Move{From: testutil.Sq(t, "a2"), To: testutil.Sq(t, "a3")})
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver, "Move after mate")
}

func TestSynchronized_Promotion(t *testing.T) {
	g := Wrap(newGame(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1"))
	if err := g.MoveUCI("a7a8"); err != nil {
		t.Fatalf("MoveUCI() error = %v", err)
	}
	if sq, ok := g.PendingPromotion(); !ok || sq != testutil.Sq(t, "a8") {
		t.Errorf("PendingPromotion() = %v, %v, want a8, true", sq, ok)
	}
	if g.Turn() != chess.White {
		t.Errorf("Turn() = %v, want White", g.Turn())
	}
	if err := g.Promote(chess.Bishop); err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if got := g.Board().Get(testutil.Sq(t, "a8")); got != chess.W(chess.Bishop) {
		t.Errorf("piece on a8 = %v, want %v", got, chess.W(chess.Bishop))
	}
	if g.DrawReason() != NoDraw {
		t.Errorf("DrawReason() = %v, want %v", g.DrawReason(), NoDraw)
	}
}

func TestSynchronized_NoRace(t *testing.T) {
	cfg := quietConfig()
	cfg.Draw.Repetition = false
	ctrl, err := NewFromFEN(cfg, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN() error = %v", err)
	}
	g := Wrap(ctrl)
	shuffle := []string{"a1a2", "e8d8", "a2a1", "d8e8"}
	a1 := testutil.Sq(t, "a1")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = g.FEN()
				_ = g.State()
				_ = g.Turn()
				_, _ = g.LegalMoves(a1)
			}
		}()
	}

	for round := 0; round < 3; round++ {
		for _, m := range shuffle {
			if err := g.MoveUCI(m); err != nil {
				t.Errorf("MoveUCI(%q) error = %v", m, err)
			}
		}
	}
	wg.Wait()

	if g.State() != AwaitingMove {
		t.Errorf("State() = %v, want %v", g.State(), AwaitingMove)
	}
}
