package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordList(t *testing.T) {
	input := `# positive words
good
Great
EXCELLENT
`
	lex, err := LoadWordList(strings.NewReader(input), "positive")
	require.NoError(t, err)

	assert.Equal(t, 3, lex.Size())
	assert.Equal(t, []string{"positive"}, lex.Categories)

	// Lookup is case-insensitive because both sides normalize to lower case
	for _, token := range []string{"good", "Great", "great", "excellent"} {
		entry, ok := lex.Lookup(token)
		require.True(t, ok, "expected %q in lexicon", token)
		assert.Equal(t, []string{"positive"}, entry.Categories)
	}
}

func TestLoadWordList_RejectsMultiWordLines(t *testing.T) {
	_, err := LoadWordList(strings.NewReader("two words\n"), "positive")
	assert.Error(t, err)
}

func TestMergeWordList_CombinesCategories(t *testing.T) {
	lex, err := LoadWordList(strings.NewReader("good\nhappy\n"), "positive")
	require.NoError(t, err)
	require.NoError(t, lex.MergeWordList(strings.NewReader("bad\nsad\n"), "negative"))

	assert.Equal(t, 4, lex.Size())
	assert.Equal(t, []string{"negative", "positive"}, lex.Categories)
}

func TestLoadPolarityTable(t *testing.T) {
	input := "good\t0.8\nbad\t-0.6\nthe\t0\n"
	lex, err := LoadPolarityTable(strings.NewReader(input))
	require.NoError(t, err)

	good, ok := lex.Lookup("good")
	require.True(t, ok)
	assert.Equal(t, []string{"positive"}, good.Categories)
	assert.Equal(t, 0.8, good.Polarity)
	assert.True(t, good.HasPolarity)

	bad, _ := lex.Lookup("BAD")
	assert.Equal(t, []string{"negative"}, bad.Categories)

	the, _ := lex.Lookup("the")
	assert.Equal(t, []string{"neutral"}, the.Categories)
}

func TestLoadPolarityTable_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing score", "good\n"},
		{"non-numeric score", "good\thigh\n"},
		{"extra column", "good\t0.8\textra\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPolarityTable(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadCategoryTable(t *testing.T) {
	input := "good\tpositive\ngood\tstrong\nbad\tnegative\n"
	lex, err := LoadCategoryTable(strings.NewReader(input))
	require.NoError(t, err)

	good, ok := lex.Lookup("good")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"positive", "strong"}, good.Categories)
}

func TestLoadLexiconFile_WordList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positive.txt")
	require.NoError(t, os.WriteFile(path, []byte("good\ngreat\n"), 0644))

	lex, err := LoadLexiconFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"positive"}, lex.Categories, "category comes from the file base name")
}

func TestLoadLexiconFile_PolarityTSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sentiment.tsv")
	require.NoError(t, os.WriteFile(path, []byte("good\t1\nbad\t-1\n"), 0644))

	lex, err := LoadLexiconFile(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"positive", "negative"}, lex.Categories)
}

func TestLoadLexiconFile_CategoryTSVFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.tsv")
	require.NoError(t, os.WriteFile(path, []byte("good\tpositive\nbad\tnegative\n"), 0644))

	lex, err := LoadLexiconFile(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"positive", "negative"}, lex.Categories)
}

func TestLoadLexiconFile_Missing(t *testing.T) {
	_, err := LoadLexiconFile(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.Error(t, err)
}

func TestLexicon_Validate(t *testing.T) {
	assert.Error(t, NewLexicon().Validate(), "empty lexicon must not validate")

	lex, err := LoadWordList(strings.NewReader("good\n"), "positive")
	require.NoError(t, err)
	assert.NoError(t, lex.Validate())
}
