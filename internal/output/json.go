package output

import (
	"encoding/json"
	"io"
	"maps"
	"strconv"
	"strings"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags         map[string]string `json:"tags"`
	StartComment string            `json:"startComment,omitempty"`
	Moves        []JSONMove        `json:"moves,omitempty"`
	Result       string            `json:"result,omitempty"`
	PlyCount     int               `json:"plyCount"`
	InitialFEN   string            `json:"initialFEN"`
	FinalFEN     string            `json:"finalFEN"`
	Errors       []string          `json:"errors,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber   int          `json:"moveNumber"`
	Color        string       `json:"color"` // "white" or "black"
	SAN          string       `json:"san"`
	UCI          string       `json:"uci"`
	From         string       `json:"from"`
	To           string       `json:"to"`
	Piece        string       `json:"piece"`
	Captured     string       `json:"captured,omitempty"`
	Promotion    string       `json:"promotion,omitempty"`
	NAGs         []string     `json:"nags,omitempty"`
	StartComment string       `json:"startComment,omitempty"`
	Comment      string       `json:"comment,omitempty"`
	Variations   [][]JSONMove `json:"variations,omitempty"`
	FEN          string       `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*game.Game, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, g := range games {
		jsonGames[i] = GameToJSON(g, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game tree to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(g.Tags),
		Result:     gameResult(g),
		PlyCount:   g.PlyCount(),
		InitialFEN: g.Root.FEN(),
		FinalFEN:   g.End().FEN(),
	}
	if cfg.Output.KeepComments {
		jg.StartComment = g.Root.StartComment
	}
	if first := g.Root.Next(); first != nil {
		jg.Moves = convertLine(first, cfg)
	}
	for _, err := range g.Errors {
		jg.Errors = append(jg.Errors, err.Error())
	}
	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	maps.Copy(result, tags)
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

// convertLine converts the line starting at first and following main
// continuations. The alternatives to each main move become its variations.
func convertLine(first *game.Node, cfg *config.Config) []JSONMove {
	result := make([]JSONMove, 0, 80) // Preallocate for typical game length

	for node := first; node != nil; node = node.Next() {
		jm := convertSingleMove(node, cfg)

		if cfg.Output.KeepVariations && node.IsMainVariation() {
			for _, alt := range node.Parent().Variations()[1:] {
				jm.Variations = append(jm.Variations, convertLine(alt, cfg))
			}
		}

		result = append(result, jm)
	}

	return result
}

// convertSingleMove converts the move leading to node.
func convertSingleMove(node *game.Node, cfg *config.Config) JSONMove {
	parent := node.Parent().Position()
	m := node.Move()

	jm := JSONMove{
		MoveNumber: node.MoveNumber(),
		Color:      colorName(node.Mover()),
		SAN:        node.SAN(),
		UCI:        m.UCI(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      pieceTypeName(parent.Get(m.From).Type()),
		FEN:        node.FEN(),
	}

	if captured := parent.Get(m.To); captured != chess.NoPiece {
		jm.Captured = pieceTypeName(captured.Type())
	} else if m.IsEnPassant() {
		jm.Captured = pieceTypeName(chess.Pawn)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}

	if cfg.Output.KeepNAGs {
		for _, nag := range node.NAGs {
			jm.NAGs = append(jm.NAGs, "$"+strconv.Itoa(nag))
		}
	}

	if cfg.Output.KeepComments {
		jm.StartComment = node.StartComment
		jm.Comment = node.Comment
		if cfg.Output.StripClockAnnotations {
			jm.Comment = stripClockAnnotations(jm.Comment)
		}
	}

	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a lower case word.
func pieceTypeName(t chess.PieceType) string {
	if t == chess.NoPieceType || t >= chess.NumPieceTypes {
		return ""
	}
	return strings.ToLower(t.String())
}
