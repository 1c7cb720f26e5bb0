package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenizedCorpus(t *testing.T) {
	input := `# tokenized reviews
doc1 the movie was good
doc2 terrible plot

doc3
`
	docs, err := ParseTokenizedCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, len(docs))

	assert.Equal(t, Document{ID: "doc1", Tokens: []string{"the", "movie", "was", "good"}}, docs[0])
	assert.Equal(t, 2, len(docs[1].Tokens))
	assert.Equal(t, 0, len(docs[2].Tokens), "a bare document ID is a valid empty document")
}

func TestParseTokenizedCorpus_DuplicateID(t *testing.T) {
	input := "doc1 a b\ndoc1 c d\n"
	_, err := ParseTokenizedCorpus(strings.NewReader(input))
	assert.Error(t, err)
}

func TestLoadCorpusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("doc1 good bad\n"), 0644))

	docs, err := LoadCorpusFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, len(docs))
	assert.Equal(t, "doc1", docs[0].ID)
}

func TestLoadCorpusFile_Missing(t *testing.T) {
	_, err := LoadCorpusFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
