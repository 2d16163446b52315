package parser

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/errors"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/notation"
)

// Parser parses PGN input into game trees.
type Parser struct {
	lexer   *Lexer
	cfg     *config.Config
	log     zerolog.Logger
	gameNum int
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
		log:   cfg.Logger,
	}
}

// ParseGame parses a single game from the input.
// Returns nil, nil if no more games are available.
//
// Movetext problems never fail the game: each unusable token is logged,
// recorded in Game.Errors and skipped. A game whose FEN tag cannot be parsed
// keeps its tags but no moves.
func (p *Parser) ParseGame() (*game.Game, error) {
	raw, err := p.lexer.NextGame()
	if err != nil {
		return nil, &errors.ParseError{Err: err, File: p.cfg.CurrentInputFile, Line: p.lexer.LineNumber()}
	}
	if raw == nil {
		return nil, nil
	}
	p.gameNum++

	tags := make(map[string]string, len(raw.Tags))
	for _, tag := range raw.Tags {
		tags[tag.Name] = tag.Value
	}

	g, err := game.NewFromTags(tags)
	if err != nil {
		g = &game.Game{Tags: tags, Root: game.NewRoot(engine.NewInitialPosition())}
		p.recordError(g, &errors.GameError{
			Err:     err,
			GameNum: p.gameNum,
			File:    p.cfg.CurrentInputFile,
			Line:    raw.StartLine,
		}, "")
		raw.Movetext = ""
	}
	g.Number = p.gameNum
	g.StartLine = raw.StartLine
	g.EndLine = raw.EndLine

	p.parseMovetext(g, Tokenize(raw.Movetext, raw.MovetextLine))
	return g, nil
}

// parseMovetext replays the tokens of one game into its tree.
//
// The stack holds the node the next move is played from. "(" pushes the
// parent of the top node so the variation replaces the last move; ")" pops.
// inVariation is false until the first move after the start of the game or
// of a variation, which decides where a comment is attached.
func (p *Parser) parseMovetext(g *game.Game, tokens []Token) {
	stack := []*game.Node{g.Root}
	inVariation := false
	startComment := ""
	skipDepth := 0

	for _, tok := range tokens {
		if skipDepth > 0 {
			switch tok.Type {
			case RAVStart:
				skipDepth++
			case RAVEnd:
				skipDepth--
			}
			continue
		}

		top := stack[len(stack)-1]

		switch tok.Type {
		case TerminatingResult:
			if len(stack) == 1 {
				g.SetTag(chess.TagResult, tok.Text)
			}

		case LineComment:
			// ignored

		case CommentToken:
			text := decodeComment(tok.Text)
			switch {
			case inVariation:
				top.Comment = appendComment(top.Comment, text)
			case len(stack) == 1:
				g.Root.StartComment = appendComment(g.Root.StartComment, text)
			default:
				startComment = appendComment(startComment, text)
			}

		case NAGToken:
			nag, ok := decodeNAG(tok.Text)
			if !inVariation || !ok {
				p.skipToken(g, top, tok, "annotation glyph without a move")
				continue
			}
			top.NAGs = append(top.NAGs, nag)

		case RAVStart:
			parent := top.Parent()
			if parent == nil {
				p.skipToken(g, top, tok, "variation before the first move")
				skipDepth = 1
				continue
			}
			stack = append(stack, parent)
			inVariation = false

		case RAVEnd:
			if len(stack) == 1 {
				p.skipToken(g, top, tok, "unmatched variation end")
				continue
			}
			stack = stack[:len(stack)-1]

		case MoveToken:
			inVariation = true
			child, err := p.playMove(top, tok)
			if err != nil {
				p.recordError(g, &errors.GameError{
					Err:      err,
					GameNum:  p.gameNum,
					PlyNum:   top.Ply() + 1,
					MoveText: tok.Text,
					File:     p.cfg.CurrentInputFile,
					Line:     tok.Line,
				}, top.FEN())
				continue
			}
			if startComment != "" {
				child.StartComment = startComment
				startComment = ""
			}
			stack[len(stack)-1] = child
		}
	}

	if len(stack) > 1 {
		p.log.Debug().Int("game", p.gameNum).Int("open", len(stack)-1).Msg("unterminated variation")
	}
}

// playMove resolves a move token against node and adds it as a
// continuation, duplicating an existing one if necessary.
func (p *Parser) playMove(node *game.Node, tok Token) (*game.Node, error) {
	san, nag := splitMoveSuffix(tok.Text)
	pos := node.Position()
	m, err := notation.ParseSAN(&pos, san)
	if err != nil {
		return nil, err
	}
	child, err := node.AddVariation(m, false)
	if errors.Is(err, errors.ErrDuplicateVariation) {
		child, err = node.AddVariation(m, true)
	}
	if err != nil {
		return nil, err
	}
	if nag != 0 {
		child.NAGs = append(child.NAGs, nag)
	}
	return child, nil
}

// skipToken records a token that has no place in the tree.
func (p *Parser) skipToken(g *game.Game, node *game.Node, tok Token, reason string) {
	p.recordError(g, &errors.GameError{
		Err:      fmt.Errorf("%s: %w", reason, errors.ErrParseFailure),
		GameNum:  p.gameNum,
		PlyNum:   node.Ply(),
		MoveText: tok.Text,
		File:     p.cfg.CurrentInputFile,
		Line:     tok.Line,
	}, node.FEN())
}

// recordError logs a recoverable problem and keeps it with the game.
func (p *Parser) recordError(g *game.Game, gameErr *errors.GameError, fen string) {
	event := p.log.Warn().
		Int("game", gameErr.GameNum).
		Int("ply", gameErr.PlyNum).
		Int("line", gameErr.Line).
		Err(gameErr.Err)
	if gameErr.MoveText != "" {
		event = event.Str("token", gameErr.MoveText)
	}
	if fen != "" {
		event = event.Str("fen", fen)
	}
	event.Msg("pgn import problem")
	g.AddError(gameErr)
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*game.Game, error) {
	// Pre-allocate with reasonable initial capacity to reduce reallocations
	games := make([]*game.Game, 0, 100)

	for {
		g, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if g == nil {
			break
		}
		games = append(games, g)
	}

	return games, nil
}

// GameCount returns the number of games parsed so far.
func (p *Parser) GameCount() int {
	return p.gameNum
}
