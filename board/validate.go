package board

// WordChecker is the dictionary surface Validate needs. A checker that is
// not Ready has not finished (or failed) loading its word list; its answers
// must not be mistaken for "checked and invalid".
type WordChecker interface {
	Ready() bool
	IsValidWord(word string) bool
}

// Validation is the full verdict on one player's board.
type Validation struct {
	Valid           bool            `json:"isValid"`
	Connected       bool            `json:"isConnected"`
	Words           []ExtractedWord `json:"allWords"`
	ValidWords      []ExtractedWord `json:"validWords"`
	InvalidWords    []ExtractedWord `json:"invalidWords"`
	Isolated        []Tile          `json:"isolatedTiles"`
	DictionaryReady bool            `json:"dictionaryReady"`
}

// Validate judges a board. An empty board is trivially valid. A non-empty
// board is valid only when the dictionary is ready, every tile is connected,
// no tile is isolated, at least one word was formed, and every word is in
// the dictionary. Structure (words, connectivity, isolation) is computed
// even while the dictionary is still loading.
func Validate(tiles []Tile, size int, dict WordChecker) Validation {
	if len(tiles) == 0 {
		return Validation{
			Valid:           true,
			Connected:       true,
			DictionaryReady: dict != nil && dict.Ready(),
		}
	}

	v := Validation{
		Words:           ExtractWords(tiles, size),
		Connected:       Connected(tiles, size),
		Isolated:        IsolatedTiles(tiles, size),
		DictionaryReady: dict != nil && dict.Ready(),
	}

	if v.DictionaryReady {
		for _, w := range v.Words {
			if dict.IsValidWord(w.Word) {
				v.ValidWords = append(v.ValidWords, w)
			} else {
				v.InvalidWords = append(v.InvalidWords, w)
			}
		}
	}

	v.Valid = v.DictionaryReady &&
		v.Connected &&
		len(v.Isolated) == 0 &&
		len(v.Words) > 0 &&
		len(v.InvalidWords) == 0

	return v
}
