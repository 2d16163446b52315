// Package index records which moves were played from which positions across
// a collection of games, and turns those records into weighted candidate
// moves for a position.
package index

// Store persists position records. Keys are hashing.PositionKey values.
// Implementations must be safe for concurrent use.
type Store interface {
	// Record notes that uci was played from the position with key in game
	// gameNum.
	Record(key uint64, uci string, gameNum int) error

	// Lookup returns everything recorded for key, or an error wrapping
	// errors.ErrNotFound.
	Lookup(key uint64) (Entry, error)

	// Close releases the store.
	Close() error
}

// Entry is the stored record of one position.
type Entry struct {
	Moves []MoveCount `json:"moves"`
	Games []int       `json:"games"`
}

// MoveCount is a move played from a position and how often it was played.
type MoveCount struct {
	UCI   string `json:"uci"`
	Count int    `json:"count"`
}

// add counts one more play of uci in gameNum. A game is listed once even
// when it reaches the position several times.
func (e *Entry) add(uci string, gameNum int) {
	found := false
	for i := range e.Moves {
		if e.Moves[i].UCI == uci {
			e.Moves[i].Count++
			found = true
			break
		}
	}
	if !found {
		e.Moves = append(e.Moves, MoveCount{UCI: uci, Count: 1})
	}
	for _, n := range e.Games {
		if n == gameNum {
			return
		}
	}
	e.Games = append(e.Games, gameNum)
}
