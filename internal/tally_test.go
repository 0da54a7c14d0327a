package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/databrickslabs/sandbox/heavybag/counters"
	"github.com/databrickslabs/sandbox/heavybag/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"one.txt":                        "a a a b",
		"two.txt":                        "B c a",
		filepath.Join("sub", "three.md"): "c the",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestTallyMergesFiles(t *testing.T) {
	ctx := fixtures.Context(t)
	cfg := &Config{Workers: 2, Pattern: ".*", Lower: true, Ignore: []string{"the"}}

	bag, err := Tally(ctx, cfg, testDir(t), nil)
	require.NoError(t, err)

	expected := counters.Of("a", "a", "a", "a", "b", "b", "c", "c")
	assert.True(t, expected.Equal(bag), bag.String())
}

func TestTallyKeepsCaseAndFilters(t *testing.T) {
	ctx := fixtures.Context(t)
	cfg := &Config{Workers: 1, Pattern: `\.txt$`}

	progress := make(chan string)
	var seen []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		for f := range progress {
			seen = append(seen, f)
		}
	}()
	bag, err := Tally(ctx, cfg, testDir(t), progress)
	close(progress)
	<-done
	require.NoError(t, err)

	assert.Equal(t, int64(7), bag.Len())
	assert.Equal(t, int64(1), bag.Count("B"))
	assert.False(t, bag.Contains("the"))
	assert.ElementsMatch(t, []string{"one.txt", "two.txt"}, seen)
}

func TestTallyMissingDir(t *testing.T) {
	_, err := Tally(fixtures.Context(t), &Config{Pattern: ".*"}, filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestTallyBadPattern(t *testing.T) {
	_, err := Tally(fixtures.Context(t), &Config{Pattern: "("}, testDir(t), nil)
	assert.ErrorContains(t, err, "pattern")
}
