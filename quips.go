package jestsay

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// ReadQuips extracts quips from a stream: one per line, blank lines and
// '#' comments skipped.
func ReadQuips(r io.Reader) []string {
	var quips []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quips = append(quips, line)
	}
	return quips
}

// LoadQuips reads quips from one or more files, concatenated in order.
func LoadQuips(paths ...string) ([]string, error) {
	var quips []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("loading quips: %w", err)
		}
		quips = append(quips, ReadQuips(f)...)
		f.Close()
	}
	return quips, nil
}

// Pick selects one quip at random. The random source is injected so the
// render pipeline itself stays deterministic.
func Pick(quips []string, rnd *rand.Rand) string {
	if len(quips) == 0 {
		return ""
	}
	return quips[rnd.Intn(len(quips))]
}
