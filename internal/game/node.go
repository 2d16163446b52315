// Package game models a chess game as a tree of positions: the main line and
// any number of nested variations, each node carrying its annotations.
package game

import (
	"fmt"
	"iter"
	"slices"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/errors"
	"github.com/lgbarn/chesstree-go/internal/notation"
)

// Node is one position in a game tree. The root holds the starting position
// and no move; every other node holds the move that produced its position
// from its parent's.
//
// A node owns its variations. The parent link is only used for navigation.
type Node struct {
	parent     *Node
	move       chess.Move
	position   chess.Position
	san        string
	variations []*Node

	// Numeric annotation glyphs attached to the move.
	NAGs []int

	// Comment following the move.
	Comment string

	// Comment before the first move of a variation.
	StartComment string
}

// NewRoot returns a parentless node for the given starting position.
func NewRoot(pos chess.Position) *Node {
	return &Node{position: pos}
}

// Move returns the move leading to this node. It is the zero Move at the root.
func (n *Node) Move() chess.Move {
	return n.move
}

// Position returns a copy of the position at this node.
func (n *Node) Position() chess.Position {
	return n.position
}

// FEN returns the FEN text of the position at this node.
func (n *Node) FEN() string {
	return engine.FEN(&n.position)
}

// SAN returns the SAN text of the move leading to this node, computed when
// the node was created. It is empty at the root.
func (n *Node) SAN() string {
	return n.san
}

// Parent returns the previous node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root returns the first node of the tree.
func (n *Node) Root() *Node {
	node := n
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Variations returns the continuations from this node, main line first.
// The slice is a copy.
func (n *Node) Variations() []*Node {
	return slices.Clone(n.variations)
}

// NumVariations returns the number of continuations.
func (n *Node) NumVariations() int {
	return len(n.variations)
}

// Variation returns the continuation at index i.
func (n *Node) Variation(i int) (*Node, error) {
	if i < 0 || i >= len(n.variations) {
		return nil, fmt.Errorf("index %d: %w", i, errors.ErrNoSuchVariation)
	}
	return n.variations[i], nil
}

// VariationFor returns the first continuation that plays m.
func (n *Node) VariationFor(m chess.Move) (*Node, error) {
	i := n.Index(m)
	if i < 0 {
		return nil, fmt.Errorf("move %s: %w", m.UCI(), errors.ErrNoSuchVariation)
	}
	return n.variations[i], nil
}

// Index returns the position of the first continuation playing m, or -1.
func (n *Node) Index(m chess.Move) int {
	return slices.IndexFunc(n.variations, func(v *Node) bool {
		return v.move.Equal(m)
	})
}

// HasVariation reports whether some continuation plays m.
func (n *Node) HasVariation(m chess.Move) bool {
	return n.Index(m) >= 0
}

// newChild builds, but does not attach, the node reached by m.
func (n *Node) newChild(m chess.Move) (*Node, error) {
	legal, err := engine.ResolveMove(&n.position, m)
	if err != nil {
		return nil, err
	}
	san, err := notation.SAN(&n.position, legal)
	if err != nil {
		return nil, err
	}
	child := &Node{parent: n, move: legal, position: n.position, san: san}
	engine.ApplyMove(&child.position, legal)
	return child, nil
}

// prepareVariation checks m against the existing continuations and builds
// its node.
func (n *Node) prepareVariation(m chess.Move, force bool) (*Node, error) {
	if !force && n.HasVariation(m) {
		return nil, fmt.Errorf("move %s: %w", m.UCI(), errors.ErrDuplicateVariation)
	}
	return n.newChild(m)
}

// AddVariation appends a continuation playing m and returns its node. It
// fails with errors.ErrDuplicateVariation if m is already a continuation,
// unless force is set, and with a *errors.MoveError if m is illegal here.
func (n *Node) AddVariation(m chess.Move, force bool) (*Node, error) {
	child, err := n.prepareVariation(m, force)
	if err != nil {
		return nil, err
	}
	n.variations = append(n.variations, child)
	return child, nil
}

// AddMainVariation inserts a continuation playing m as the main line.
func (n *Node) AddMainVariation(m chess.Move) (*Node, error) {
	child, err := n.prepareVariation(m, false)
	if err != nil {
		return nil, err
	}
	n.variations = slices.Insert(n.variations, 0, child)
	return child, nil
}

// AddLine follows or extends the main continuation with each move in turn
// and returns the last node. Existing continuations are reused.
func (n *Node) AddLine(moves ...chess.Move) (*Node, error) {
	node := n
	for _, m := range moves {
		if next, err := node.VariationFor(m); err == nil {
			node = next
			continue
		}
		next, err := node.AddVariation(m, false)
		if err != nil {
			return nil, err
		}
		node = next
	}
	return node, nil
}

// indexOf is Index with an error for a missing move.
func (n *Node) indexOf(m chess.Move) (int, error) {
	i := n.Index(m)
	if i < 0 {
		return -1, fmt.Errorf("move %s: %w", m.UCI(), errors.ErrNoSuchVariation)
	}
	return i, nil
}

// Promote moves the continuation playing m one place up, if possible.
func (n *Node) Promote(m chess.Move) error {
	i, err := n.indexOf(m)
	if err != nil {
		return err
	}
	if i > 0 {
		n.variations[i-1], n.variations[i] = n.variations[i], n.variations[i-1]
	}
	return nil
}

// Demote moves the continuation playing m one place down, if possible.
func (n *Node) Demote(m chess.Move) error {
	i, err := n.indexOf(m)
	if err != nil {
		return err
	}
	if i < len(n.variations)-1 {
		n.variations[i+1], n.variations[i] = n.variations[i], n.variations[i+1]
	}
	return nil
}

// PromoteToMain makes the continuation playing m the main line, keeping the
// order of the others.
func (n *Node) PromoteToMain(m chess.Move) error {
	i, err := n.indexOf(m)
	if err != nil {
		return err
	}
	v := n.variations[i]
	n.variations = slices.Delete(n.variations, i, i+1)
	n.variations = slices.Insert(n.variations, 0, v)
	return nil
}

// RemoveVariation drops the continuation playing m together with its
// subtree.
func (n *Node) RemoveVariation(m chess.Move) error {
	i, err := n.indexOf(m)
	if err != nil {
		return err
	}
	n.variations[i].parent = nil
	n.variations = slices.Delete(n.variations, i, i+1)
	return nil
}

// IsMainVariation reports whether this node is the main continuation of its
// parent. The root is.
func (n *Node) IsMainVariation() bool {
	if n.parent == nil {
		return true
	}
	return len(n.parent.variations) > 0 && n.parent.variations[0] == n
}

// IsMainLine reports whether every node from the root to here is a main
// continuation.
func (n *Node) IsMainLine() bool {
	for node := n; node != nil; node = node.parent {
		if !node.IsMainVariation() {
			return false
		}
	}
	return true
}

// CanHaveStartComment reports whether this node starts a line: the root, or
// a continuation other than the main one.
func (n *Node) CanHaveStartComment() bool {
	if n.parent == nil {
		return true
	}
	return !n.IsMainVariation()
}

// Next returns the main continuation, or nil at the end of a line.
func (n *Node) Next() *Node {
	if len(n.variations) == 0 {
		return nil
	}
	return n.variations[0]
}

// Ply returns the number of moves from the root to this node.
func (n *Node) Ply() int {
	ply := 0
	for node := n; node.parent != nil; node = node.parent {
		ply++
	}
	return ply
}

// MoveNumber returns the fullmove number of the move leading to this node.
// At the root it is the fullmove number of the starting position.
func (n *Node) MoveNumber() int {
	if n.parent == nil {
		return n.position.FullmoveNumber
	}
	return n.parent.position.FullmoveNumber
}

// Mover returns the side that played the move leading to this node.
func (n *Node) Mover() chess.Colour {
	return n.position.Turn.Opposite()
}

// Path returns the nodes from the root to this node inclusive.
func (n *Node) Path() []*Node {
	var path []*Node
	for node := n; node != nil; node = node.parent {
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}

// Moves returns the moves from the root to this node.
func (n *Node) Moves() []chess.Move {
	path := n.Path()
	moves := make([]chess.Move, 0, len(path)-1)
	for _, node := range path[1:] {
		moves = append(moves, node.move)
	}
	return moves
}

// SANMoves returns the SAN text of the moves from the root to this node.
func (n *Node) SANMoves() []string {
	path := n.Path()
	sans := make([]string, 0, len(path)-1)
	for _, node := range path[1:] {
		sans = append(sans, node.san)
	}
	return sans
}

// History returns the positions from the root to this node inclusive.
func (n *Node) History() []chess.Position {
	path := n.Path()
	history := make([]chess.Position, len(path))
	for i, node := range path {
		history[i] = node.position
	}
	return history
}

// MainLine yields the main continuation from this node onward, excluding the
// node itself.
func (n *Node) MainLine() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := n.Next(); node != nil; node = node.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// End returns the last node of the main line from here.
func (n *Node) End() *Node {
	node := n
	for next := node.Next(); next != nil; next = node.Next() {
		node = next
	}
	return node
}

// Walk yields this node and all of its descendants in pre-order, main
// continuations before alternatives.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node) {
				return
			}
			for i := len(node.variations) - 1; i >= 0; i-- {
				stack = append(stack, node.variations[i])
			}
		}
	}
}
