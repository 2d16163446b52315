package chess

// Common PGN tag names.
const (
	TagEvent       = "Event"
	TagSite        = "Site"
	TagDate        = "Date"
	TagRound       = "Round"
	TagWhite       = "White"
	TagBlack       = "Black"
	TagResult      = "Result"
	TagFEN         = "FEN"
	TagSetUp       = "SetUp"
	TagPlyCount    = "PlyCount"
	TagECO         = "ECO"
	TagAnnotator   = "Annotator"
	TagTermination = "Termination"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	TagEvent,
	TagSite,
	TagDate,
	TagRound,
	TagWhite,
	TagBlack,
	TagResult,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Game results as written in PGN.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

// IsResult reports whether s is one of the four PGN result tokens.
func IsResult(s string) bool {
	switch s {
	case ResultWhiteWins, ResultBlackWins, ResultDraw, ResultUnknown:
		return true
	default:
		return false
	}
}
