package lexicon

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MatchTally accumulates which lexicon words actually matched across a
// scoring run. It is safe for concurrent use, so corpus scoring can feed it
// from several workers.
type MatchTally struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMatchTally creates an empty tally
func NewMatchTally() *MatchTally {
	return &MatchTally{counts: make(map[string]int)}
}

func (t *MatchTally) record(word string) {
	t.mu.Lock()
	t.counts[word]++
	t.mu.Unlock()
}

// Count returns how often a lexicon word matched
func (t *MatchTally) Count(word string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[strings.ToLower(word)]
}

// NeverMatched returns the lexicon words that matched no document in the
// tally, in sorted order. Unmatched words are expected, not a fault; the
// query exists for lexicon-improvement workflows.
func (l *Lexicon) NeverMatched(tally *MatchTally) []string {
	tally.mu.Lock()
	defer tally.mu.Unlock()

	unmatched := make([]string, 0)
	for word := range l.Entries {
		if tally.counts[word] == 0 {
			unmatched = append(unmatched, word)
		}
	}
	sort.Strings(unmatched)
	return unmatched
}

// ScoreDocument counts, for every lexicon category, the tokens matching a
// lexicon word of that category. Matching is a single map lookup per token.
// A zero-token document yields a record with all counts zero.
//
// tally may be nil when match coverage is not being collected.
func ScoreDocument(docID string, tokens []string, lex *Lexicon, tally *MatchTally) ScoreRecord {
	record := ScoreRecord{
		DocID:       docID,
		Counts:      make(map[string]int, len(lex.Categories)),
		TotalTokens: len(tokens),
	}
	for _, category := range lex.Categories {
		record.Counts[category] = 0
	}

	for _, token := range tokens {
		entry, ok := lex.Entries[strings.ToLower(token)]
		if !ok {
			continue
		}
		for _, category := range entry.Categories {
			record.Counts[category]++
		}
		if tally != nil {
			tally.record(entry.Word)
		}
	}

	return record
}

// ScoreCorpus scores every document against the lexicon, fanning out across
// config.Workers goroutines. Each document depends only on its own tokens
// and the read-only lexicon, so results carry no ordering dependency; they
// are returned in input order regardless. Cancellation is honored between
// documents, never inside one.
func ScoreCorpus(ctx context.Context, docs []Document, lex *Lexicon, config ScoringConfig, tally *MatchTally) ([]ScoreRecord, error) {
	records := make([]ScoreRecord, len(docs))

	workers := config.Workers
	if workers <= 0 {
		workers = DefaultScoringConfig().Workers
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records[i] = ScoreDocument(doc.ID, doc.Tokens, lex, tally)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// SentimentRatio derives the sentiment ratio from the record's counts.
//
// NetOverSentiment is (positive - negative) / (positive + negative) and is
// undefined when no sentiment word matched; NetOverLength divides by the
// total token count instead and is undefined for an empty document. The
// undefined case reports NaN rather than failing, since documents without
// sentiment words are a normal outcome.
func (r ScoreRecord) SentimentRatio(mode RatioMode, config ScoringConfig) float64 {
	pos := r.Counts[config.PositiveCategory]
	neg := r.Counts[config.NegativeCategory]

	switch mode {
	case NetOverLength:
		if r.TotalTokens == 0 {
			return math.NaN()
		}
		return float64(pos-neg) / float64(r.TotalTokens)
	default:
		if pos+neg == 0 {
			return math.NaN()
		}
		return float64(pos-neg) / float64(pos+neg)
	}
}

// SubjectivityRatio is (positive + negative) / total tokens: the share of
// the document carrying any sentiment at all. Undefined (NaN) only for an
// empty document; a non-empty document with no matches scores 0.
func (r ScoreRecord) SubjectivityRatio(config ScoringConfig) float64 {
	if r.TotalTokens == 0 {
		return math.NaN()
	}
	pos := r.Counts[config.PositiveCategory]
	neg := r.Counts[config.NegativeCategory]
	return float64(pos+neg) / float64(r.TotalTokens)
}
