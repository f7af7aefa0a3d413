package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
//
// The placement field is required; missing trailing fields take their
// defaults (white to move, no castling, no en passant, clocks 0 and 1).
// Castling rights whose king or rook is not on its home square are dropped.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	if len(parts) > 6 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "FEN has %d fields", len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(board); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "placement has %d ranks", len(rows))
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
				}
				continue
			}
			piece, ok := chess.PieceFromFENChar(c)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
			}
			if file >= chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
			}
			board.Set(chess.Sq(rank, file), piece)
			file++
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}
	return nil
}

// checkKings requires exactly one king of each colour.
func checkKings(board *chess.Board) error {
	var kings [2]int
	board.Pieces(func(_ chess.Coord, p chess.Piece) {
		if p.Type() == chess.King {
			colour, _ := p.Colour()
			kings[colour]++
		}
	})
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return errors.Wrapf(errors.ErrInvalidFEN, "%d %v kings", kings[colour], colour)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling |= chess.WhiteKingside
		case 'Q':
			board.Castling |= chess.WhiteQueenside
		case 'k':
			board.Castling |= chess.BlackKingside
		case 'q':
			board.Castling |= chess.BlackQueenside
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid castling character: %c", c)
		}
	}

	dropUnbackedCastling(board)
	return nil
}

// dropUnbackedCastling clears rights whose king or rook is missing from
// its home square, so the castling-right invariant holds for loaded positions.
func dropUnbackedCastling(board *chess.Board) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		if !board.Get(chess.Sq(home, chess.KingFile)).Is(colour, chess.King) {
			board.Castling = board.Castling.Without(chess.KingsideRight(colour) | chess.QueensideRight(colour))
			continue
		}
		if !board.Get(chess.Sq(home, chess.KingsideRookFile)).Is(colour, chess.Rook) {
			board.Castling = board.Castling.Without(chess.KingsideRight(colour))
		}
		if !board.Get(chess.Sq(home, chess.QueensideRookFile)).Is(colour, chess.Rook) {
			board.Castling = board.Castling.Without(chess.QueensideRight(colour))
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseCoord(parts[3])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid en passant square: %s", parts[3])
	}
	// The target lies behind a pawn of the side that just moved.
	mover := board.ToMove.Opposite()
	if sq.Rank != chess.PawnStartRank(mover)+chess.ColourOffset(mover) {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant square %s on wrong rank", parts[3])
	}
	board.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid halfmove clock: %s", parts[4])
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid move number: %s", parts[5])
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			c, ok := board.Get(chess.Sq(rank, file)).FENChar()
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(c)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if board.Castling == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	if board.Castling.Has(chess.WhiteKingside) {
		sb.WriteByte('K')
	}
	if board.Castling.Has(chess.WhiteQueenside) {
		sb.WriteByte('Q')
	}
	if board.Castling.Has(chess.BlackKingside) {
		sb.WriteByte('k')
	}
	if board.Castling.Has(chess.BlackQueenside) {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq, ok := board.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
