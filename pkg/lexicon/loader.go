package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadWordList reads a plain word list (one word per line, '#' comments)
// into the given category of a new lexicon.
func LoadWordList(r io.Reader, category string) (*Lexicon, error) {
	lex := NewLexicon()
	if err := lex.MergeWordList(r, category); err != nil {
		return nil, err
	}
	return lex, nil
}

// MergeWordList adds a word list to an existing lexicon, so multiple
// per-category files combine into one dictionary.
func (l *Lexicon) MergeWordList(r io.Reader, category string) error {
	if strings.TrimSpace(category) == "" {
		return ValidationError{Field: "category", Message: "category cannot be empty"}
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(strings.Fields(line)) != 1 {
			return ValidationError{
				Field:   fmt.Sprintf("line[%d]", lineNum),
				Message: "word list line must contain exactly one word",
				Value:   line,
			}
		}
		l.Add(line, category)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	return nil
}

// LoadPolarityTable reads a tab-separated word -> score table. Each line is
//
//	word<TAB>score
//
// Positive scores land in "positive", negative in "negative", zero in
// "neutral". Scores are kept on the entries for weighted analyses.
func LoadPolarityTable(r io.Reader) (*Lexicon, error) {
	lex := NewLexicon()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, ValidationError{
				Field:   fmt.Sprintf("line[%d]", lineNum),
				Message: "polarity line must be word<TAB>score",
				Value:   line,
			}
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, ValidationError{
				Field:   fmt.Sprintf("line[%d].score", lineNum),
				Message: "score is not numeric",
				Value:   parts[1],
			}
		}

		category := "neutral"
		if score > 0 {
			category = "positive"
		} else if score < 0 {
			category = "negative"
		}
		lex.AddScored(parts[0], category, score)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polarity table: %w", err)
	}
	return lex, nil
}

// LoadCategoryTable reads a tab-separated word -> category table. Each line
// is
//
//	word<TAB>category
//
// A word may appear on several lines to join several categories.
func LoadCategoryTable(r io.Reader) (*Lexicon, error) {
	lex := NewLexicon()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, ValidationError{
				Field:   fmt.Sprintf("line[%d]", lineNum),
				Message: "category line must be word<TAB>category",
				Value:   line,
			}
		}
		lex.Add(parts[0], parts[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category table: %w", err)
	}
	return lex, nil
}

// LoadLexiconFile loads a lexicon from disk, choosing the parser from the
// extension: .tsv is tried as a polarity table first and falls back to a
// category table, anything else is a single-category word list named after
// the file's base name.
func LoadLexiconFile(filePath string) (*Lexicon, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("lexicon file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".tsv" {
		lex, err := LoadPolarityTable(strings.NewReader(string(data)))
		if err != nil {
			var catErr error
			lex, catErr = LoadCategoryTable(strings.NewReader(string(data)))
			if catErr != nil {
				return nil, fmt.Errorf("lexicon file parses neither as polarity nor category table: %w", err)
			}
		}
		return finishLoad(lex)
	}

	category := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	lex, err := LoadWordList(strings.NewReader(string(data)), category)
	if err != nil {
		return nil, err
	}
	return finishLoad(lex)
}

func finishLoad(lex *Lexicon) (*Lexicon, error) {
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("lexicon validation failed: %w", err)
	}
	return lex, nil
}
