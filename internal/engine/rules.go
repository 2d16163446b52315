package engine

import (
	"github.com/lgbarn/chesstree-go/internal/chess"
)

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// HasFiftyMoveRule is true if the final position was reached after 50
	// moves (100 half-moves) without a pawn move or capture.
	HasFiftyMoveRule bool

	// HasThreefoldRepetition is true if the final position occurred at
	// least three times.
	HasThreefoldRepetition bool

	// HasFivefoldRepetition is true if any position occurred 5 or more times.
	HasFivefoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// Repetitions is how often the final position occurred.
	Repetitions int
}

// CanClaimDraw reports whether either side may claim a draw.
func (r DrawRuleResult) CanClaimDraw() bool {
	return r.HasFiftyMoveRule || r.HasThreefoldRepetition || r.HasInsufficientMaterial
}

// AnalyzeDrawRules analyzes a sequence of positions, oldest first, for draw
// conditions. The last position is the one being judged.
func AnalyzeDrawRules(history []chess.Position) DrawRuleResult {
	result := DrawRuleResult{}
	if len(history) == 0 {
		return result
	}

	// EPD text identifies a position for repetition: placement, side to
	// move, castling and en passant.
	positionCounts := make(map[string]int, len(history))
	for i := range history {
		key := EPD(&history[i])
		positionCounts[key]++
		if positionCounts[key] >= 5 {
			result.HasFivefoldRepetition = true
		}
	}

	final := &history[len(history)-1]
	result.Repetitions = positionCounts[EPD(final)]
	result.HasThreefoldRepetition = result.Repetitions >= 3
	result.HasFiftyMoveRule = final.HalfmoveClock >= 100
	result.HasInsufficientMaterial = IsInsufficientMaterial(final)

	return result
}

// IsInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - kings plus any number of bishops, all on squares of one colour
func IsInsufficientMaterial(pos *chess.Position) bool {
	minors := 0
	knights := 0
	lightBishops, darkBishops := 0, 0

	for sq, piece := range pos.Squares() {
		switch piece.Type() {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			if sq.IsLight() {
				lightBishops++
			} else {
				darkBishops++
			}
		}
		minors++
	}

	// K vs K, K+B vs K, K+N vs K
	if minors <= 1 {
		return true
	}

	// Bishops only, all on one square colour
	return knights == 0 && (lightBishops == 0 || darkBishops == 0)
}
