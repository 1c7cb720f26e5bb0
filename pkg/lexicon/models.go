package lexicon

import (
	"fmt"
	"sort"
	"strings"
)

// Entry represents a single lexicon word with its category labels and an
// optional numeric polarity score
type Entry struct {
	Word        string   `json:"word"`
	Categories  []string `json:"categories"`
	Polarity    float64  `json:"polarity,omitempty"`
	HasPolarity bool     `json:"has_polarity,omitempty"`
}

// Lexicon represents a word -> categories mapping, case-normalized at load
// time and read-only afterwards. Lookup is exact-match: callers wanting
// stemmed matching pre-normalize their tokens to the lexicon's form.
type Lexicon struct {
	Categories []string         `json:"categories"`
	Entries    map[string]Entry `json:"entries"`
}

// ScoreRecord represents the per-document scoring result: one match count
// per lexicon category plus the total token count. Ratios are derived from
// these counts on demand, never stored.
type ScoreRecord struct {
	DocID       string         `json:"doc_id"`
	Counts      map[string]int `json:"counts"`
	TotalTokens int            `json:"total_tokens"`
}

// Document pairs a document ID with its already-tokenized text. Tokenization
// happens upstream; the scorer only normalizes case.
type Document struct {
	ID     string   `json:"id"`
	Tokens []string `json:"tokens"`
}

// RatioMode selects the sentiment ratio definition
type RatioMode int

const (
	// NetOverSentiment is (positive - negative) / (positive + negative)
	NetOverSentiment RatioMode = iota
	// NetOverLength is (positive - negative) / total tokens
	NetOverLength
)

// ScoringConfig contains configuration for corpus scoring
type ScoringConfig struct {
	Workers          int    `json:"workers"`
	PositiveCategory string `json:"positive_category"`
	NegativeCategory string `json:"negative_category"`
}

// DefaultScoringConfig returns sensible default configuration
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Workers:          4,
		PositiveCategory: "positive",
		NegativeCategory: "negative",
	}
}

// ValidationError represents a structured lexicon input error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (ve ValidationError) Error() string {
	if ve.Value != "" {
		return fmt.Sprintf("validation error in field '%s': %s (value: %s)", ve.Field, ve.Message, ve.Value)
	}
	return fmt.Sprintf("validation error in field '%s': %s", ve.Field, ve.Message)
}

// NewLexicon creates an empty lexicon
func NewLexicon() *Lexicon {
	return &Lexicon{
		Categories: make([]string, 0),
		Entries:    make(map[string]Entry),
	}
}

// Add inserts a word into a category, merging with an existing entry when
// the word is already present. The word is lowercased here so every load
// path normalizes the same way.
func (l *Lexicon) Add(word, category string) {
	l.addEntry(word, category, 0, false)
}

// AddScored inserts a word with a polarity score. The category is derived
// from the score's sign when not given explicitly by the caller.
func (l *Lexicon) AddScored(word, category string, polarity float64) {
	l.addEntry(word, category, polarity, true)
}

func (l *Lexicon) addEntry(word, category string, polarity float64, hasPolarity bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	category = strings.ToLower(strings.TrimSpace(category))
	if word == "" || category == "" {
		return
	}

	entry, exists := l.Entries[word]
	if !exists {
		entry = Entry{Word: word}
	}

	hasCategory := false
	for _, c := range entry.Categories {
		if c == category {
			hasCategory = true
			break
		}
	}
	if !hasCategory {
		entry.Categories = append(entry.Categories, category)
	}
	if hasPolarity {
		entry.Polarity = polarity
		entry.HasPolarity = true
	}

	l.Entries[word] = entry
	l.registerCategory(category)
}

func (l *Lexicon) registerCategory(category string) {
	for _, c := range l.Categories {
		if c == category {
			return
		}
	}
	l.Categories = append(l.Categories, category)
	sort.Strings(l.Categories)
}

// Lookup returns the entry for a token after case normalization
func (l *Lexicon) Lookup(token string) (Entry, bool) {
	entry, ok := l.Entries[strings.ToLower(token)]
	return entry, ok
}

// Size returns the number of distinct words in the lexicon
func (l *Lexicon) Size() int {
	return len(l.Entries)
}

// Words returns all lexicon words in sorted order
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.Entries))
	for word := range l.Entries {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Validate checks the lexicon is usable for scoring
func (l *Lexicon) Validate() error {
	if len(l.Entries) == 0 {
		return ValidationError{Field: "entries", Message: "lexicon contains no words"}
	}
	for word, entry := range l.Entries {
		if len(entry.Categories) == 0 {
			return ValidationError{
				Field:   "entries",
				Message: "lexicon word has no categories",
				Value:   word,
			}
		}
	}
	return nil
}
