package game

import "math/rand"

// TotalTiles is the fixed size of a fresh bag under Distribution.
const TotalTiles = 98

// Distribution is the canonical per-letter tile count, totalling TotalTiles.
var Distribution = map[string]int{
	"A": 13, "B": 3, "C": 3, "D": 6, "E": 18,
	"F": 3, "G": 4, "H": 3, "I": 12, "J": 2,
	"K": 2, "L": 5, "M": 3, "N": 8, "O": 11,
	"P": 3, "Q": 2, "R": 9, "S": 6, "T": 9,
	"U": 6, "V": 3, "W": 3, "X": 2, "Y": 3,
	"Z": 2,
}

// Bag is the finite shared tile supply, kept as a frequency table rather
// than a shuffled array. Draws pick uniformly over remaining individual
// tiles, which preserves the designed letter frequencies and makes the
// remaining count O(1). Not safe for concurrent use; each bag is owned by
// exactly one room goroutine.
type Bag struct {
	counts [26]int
	total  int
}

// NewBag builds a full bag from Distribution.
func NewBag() *Bag {
	b := &Bag{}
	for letter, count := range Distribution {
		b.counts[letter[0]-'A'] = count
		b.total += count
	}
	return b
}

// NewBagFromCounts rebuilds a bag from a saved frequency table. Unknown
// letters are dropped.
func NewBagFromCounts(counts map[string]int) *Bag {
	b := &Bag{}
	for letter, count := range counts {
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' || count < 0 {
			continue
		}
		b.counts[letter[0]-'A'] = count
		b.total += count
	}
	return b
}

// Counts copies the remaining frequency table, omitting exhausted letters.
func (b *Bag) Counts() map[string]int {
	counts := make(map[string]int)
	for i, count := range b.counts {
		if count > 0 {
			counts[string(rune('A'+i))] = count
		}
	}
	return counts
}

// Remaining is the number of tiles left.
func (b *Bag) Remaining() int {
	return b.total
}

// DrawOne removes one tile chosen uniformly at random over the remaining
// individual tiles. ok is false when the bag is empty.
func (b *Bag) DrawOne() (letter string, ok bool) {
	if b.total == 0 {
		return "", false
	}

	pick := rand.Intn(b.total)
	for i, count := range b.counts {
		if pick < count {
			b.counts[i]--
			b.total--
			return string(rune('A' + i)), true
		}
		pick -= count
	}
	// Unreachable while counts sum to total.
	return "", false
}

// Draw removes up to n tiles. When fewer than n remain it returns all of
// them and empties the bag; a partial draw is never an error.
func (b *Bag) Draw(n int) []string {
	if n > b.total {
		n = b.total
	}
	letters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		letter, ok := b.DrawOne()
		if !ok {
			break
		}
		letters = append(letters, letter)
	}
	return letters
}

// Return puts one instance of letter back. Letters outside A-Z are ignored.
func (b *Bag) Return(letter string) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return
	}
	b.counts[letter[0]-'A']++
	b.total++
}

// Count reports how many tiles of one letter remain.
func (b *Bag) Count(letter string) int {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return 0
	}
	return b.counts[letter[0]-'A']
}
