package words

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	return path
}

func loadedDict(t *testing.T, words string) *Dictionary {
	t.Helper()
	d := New()
	require.NoError(t, d.Load(writeWordList(t, words)))
	return d
}

func TestDictionary_NotReady(t *testing.T) {
	t.Parallel()
	d := New()

	assert.False(t, d.Ready())
	assert.False(t, d.IsValidWord("cat"))
	assert.Equal(t, 0, d.Size())
	assert.Nil(t, d.WordsStartingWith("ca", 10))

	_, err := d.Check("cat")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestDictionary_Load(t *testing.T) {
	t.Parallel()
	d := loadedDict(t, "cat\ndog\n\n  bird  \nCAT\n")

	assert.True(t, d.Ready())
	assert.Equal(t, 3, d.Size())
	assert.True(t, d.IsValidWord("cat"))
	assert.True(t, d.IsValidWord("BIRD"))
}

func TestDictionary_LoadMissingFile(t *testing.T) {
	t.Parallel()
	d := New()

	err := d.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.False(t, d.Ready())

	// The failure sticks; a second call returns the same error.
	assert.Equal(t, err, d.Load(filepath.Join(t.TempDir(), "nope.txt")))
}

func TestDictionary_LoadEmptyFile(t *testing.T) {
	t.Parallel()
	d := New()

	require.Error(t, d.Load(writeWordList(t, "\n\n")))
	assert.False(t, d.Ready())
}

func TestDictionary_LoadIdempotent(t *testing.T) {
	t.Parallel()
	d := New()
	path := writeWordList(t, "cat\ndog\n")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Load(path))
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, d.Size())
}

func TestDictionary_CaseAndWhitespace(t *testing.T) {
	t.Parallel()
	d := loadedDict(t, "cat\n")

	assert.True(t, d.IsValidWord("CAT"))
	assert.True(t, d.IsValidWord("Cat"))
	assert.True(t, d.IsValidWord("  cat  "))
	assert.False(t, d.IsValidWord("cats"))
}

func TestDictionary_MinWordLength(t *testing.T) {
	t.Parallel()
	d := loadedDict(t, "a\nat\n")

	// Single letters never count, even when the list carries them.
	assert.False(t, d.IsValidWord("a"))
	assert.True(t, d.IsValidWord("at"))

	valid, err := d.Check("a")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestDictionary_WordsStartingWith(t *testing.T) {
	t.Parallel()
	d := loadedDict(t, "cat\ncab\ncatalog\ndog\ncart\n")

	assert.Equal(t, []string{"CAB", "CART", "CAT", "CATALOG"}, d.WordsStartingWith("ca", 10))
	assert.Equal(t, []string{"CAB", "CART"}, d.WordsStartingWith("ca", 2))
	assert.Equal(t, []string{"CAT", "CATALOG"}, d.WordsStartingWith("cat", 10))
	assert.Nil(t, d.WordsStartingWith("zz", 10))
	assert.Nil(t, d.WordsStartingWith("ca", 0))
}
