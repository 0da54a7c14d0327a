package fileset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/databrickslabs/sandbox/heavybag/fileset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	fs, err := fileset.RecursiveChildren(".")
	assert.NoError(t, err)

	abs, err := filepath.Abs(".")
	assert.NoError(t, err)

	assert.Equal(t, abs, fs.Root())
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
}

func TestRecursiveChildrenSkipsHiddenAndVendor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "nested", "b.md"), "b")
	writeFile(t, filepath.Join(dir, "vendor", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, ".git", "d.txt"), "d")

	fs, err := fileset.RecursiveChildren(dir)
	require.NoError(t, err)

	var relative []string
	for _, f := range fs {
		relative = append(relative, f.Relative)
	}
	assert.ElementsMatch(t, []string{"a.txt", filepath.Join("nested", "b.md")}, relative)

	md, err := fs.Filter(`\.md$`)
	require.NoError(t, err)
	assert.Len(t, md, 1)

	_, err = fs.Filter(`(`)
	assert.Error(t, err)
}

func TestWords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words.txt"), "The cat, the HAT!\n\nand 42 cats...")

	fs, err := fileset.RecursiveChildren(dir)
	require.NoError(t, err)
	require.Len(t, fs, 1)

	var words []string
	err = fs[0].Words(true, func(word string) {
		words = append(words, word)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "the", "hat", "and", "42", "cats"}, words)
}
