package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseTokenizedCorpus reads a pre-tokenized corpus: one document per line,
//
//	docID token token ...
//
// with '#' comments. Tokenization itself happens upstream; this format only
// carries its result. A line with just a document ID is a valid empty
// document.
func ParseTokenizedCorpus(r io.Reader) ([]Document, error) {
	docs := make([]Document, 0)
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		docID := parts[0]
		if seen[docID] {
			return nil, ValidationError{
				Field:   fmt.Sprintf("line[%d]", lineNum),
				Message: "duplicate document ID",
				Value:   docID,
			}
		}
		seen[docID] = true

		docs = append(docs, Document{ID: docID, Tokens: parts[1:]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return docs, nil
}

// LoadCorpusFile reads a tokenized corpus from disk
func LoadCorpusFile(filePath string) ([]Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()
	return ParseTokenizedCorpus(file)
}
