package jestsay

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQuips(t *testing.T) {
	input := `# header comment
first quip

  second quip
# another comment
third quip
`
	quips := ReadQuips(strings.NewReader(input))
	assert.Equal(t, []string{"first quip", "second quip", "third quip"}, quips)
}

func TestLoadQuipsMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("one\ntwo\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("three\n"), 0o644))

	quips, err := LoadQuips(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, quips)
}

func TestLoadQuipsMissingFile(t *testing.T) {
	_, err := LoadQuips(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestPick(t *testing.T) {
	quips := []string{"a", "b", "c"}
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		assert.Contains(t, quips, Pick(quips, rnd))
	}
	assert.Equal(t, "", Pick(nil, rnd))
}
