package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfRange", ErrOutOfRange, ErrOutOfRange},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrPromotionPending", ErrPromotionPending, ErrPromotionPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidPromotion) {
		t.Error("errors.Is(ErrIllegalMove, ErrInvalidPromotion) = true, want false")
	}
	if errors.Is(ErrOutOfRange, ErrIllegalMove) {
		t.Error("errors.Is(ErrOutOfRange, ErrIllegalMove) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				PlyNum:   12,
				MoveText: "e1g1",
				FEN:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			},
			contains: []string{"ply 12", "e1g1", "r3k2r/8", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrInvalidPromotion},
			contains: []string{"invalid promotion"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{MoveText: "a7a8"},
			contains: []string{"a7a8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Empty(t *testing.T) {
	err := &MoveError{}
	if got := err.Error(); got != "move error" {
		t.Errorf("MoveError{}.Error() = %q, want %q", got, "move error")
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:    ErrGameOver,
		PlyNum: 40,
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrGameOver) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrGameOver)
	}

	if !errors.Is(moveErr, ErrGameOver) {
		t.Error("errors.Is(moveErr, ErrGameOver) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		PlyNum:   24,
		MoveText: "e8c8",
	}

	wrapped := fmt.Errorf("controller rejected input: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if extractedErr.MoveText != "e8c8" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e8c8")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrOutOfRange, "rank %d file %d", 9, 3)

	if !errors.Is(wrapped, ErrOutOfRange) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "rank 9") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}

	if Wrapf(nil, "rank %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
