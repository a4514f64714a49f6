// Package words holds the dictionary used to judge extracted words. The word
// list is loaded exactly once per process; lookups before the load completes
// report a distinct not-ready answer instead of guessing.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// MinWordLength is the shortest word the game accepts.
const MinWordLength = 2

var ErrNotReady = errors.New("dictionary not loaded")

// Dictionary offers O(1) membership tests over an uppercase word set plus
// prefix search for hints. The zero value is unusable; call New.
type Dictionary struct {
	loadOnce sync.Once
	ready    atomic.Bool
	loadErr  error

	set    map[string]struct{}
	sorted []string
}

func New() *Dictionary {
	return &Dictionary{}
}

// Load reads a newline-delimited word list from path. It is idempotent:
// concurrent and repeated callers share the single in-flight load and its
// result. A failed load leaves the dictionary permanently not ready.
func (d *Dictionary) Load(path string) error {
	d.loadOnce.Do(func() {
		d.loadErr = d.load(path)
		if d.loadErr == nil {
			d.ready.Store(true)
		}
	})
	return d.loadErr
}

func (d *Dictionary) load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list %s: %w", path, err)
	}
	defer file.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read word list %s: %w", path, err)
	}
	if len(set) == 0 {
		return fmt.Errorf("word list %s is empty", path)
	}

	sorted := make([]string, 0, len(set))
	for w := range set {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	d.set = set
	d.sorted = sorted
	return nil
}

// Ready reports whether the word list finished loading successfully.
func (d *Dictionary) Ready() bool {
	return d.ready.Load()
}

// IsValidWord reports membership, case-insensitively. Words shorter than
// MinWordLength are never valid. Returns false while not ready; use Check
// when the caller must tell not-ready apart from invalid.
func (d *Dictionary) IsValidWord(word string) bool {
	ok, err := d.Check(word)
	return err == nil && ok
}

// Check is IsValidWord with the not-ready state surfaced as ErrNotReady.
func (d *Dictionary) Check(word string) (bool, error) {
	if !d.ready.Load() {
		return false, ErrNotReady
	}
	normalized := strings.ToUpper(strings.TrimSpace(word))
	if len(normalized) < MinWordLength {
		return false, nil
	}
	_, ok := d.set[normalized]
	return ok, nil
}

// WordsStartingWith returns up to limit dictionary words sharing the prefix,
// in lexicographic order. Nil while not ready.
func (d *Dictionary) WordsStartingWith(prefix string, limit int) []string {
	if !d.ready.Load() || limit <= 0 {
		return nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(prefix))

	start := sort.SearchStrings(d.sorted, normalized)
	var matches []string
	for i := start; i < len(d.sorted) && len(matches) < limit; i++ {
		if !strings.HasPrefix(d.sorted[i], normalized) {
			break
		}
		matches = append(matches, d.sorted[i])
	}
	return matches
}

// Size is the number of loaded words, 0 while not ready.
func (d *Dictionary) Size() int {
	if !d.ready.Load() {
		return 0
	}
	return len(d.set)
}
