package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"

	"github.com/socsci-tools/textnet/pkg/config"
	"github.com/socsci-tools/textnet/pkg/lexicon"
	"github.com/socsci-tools/textnet/pkg/relgraph"
)

func main() {
	config.LoadEnv()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "textnet",
	})
	if config.GetEnvString("TEXTNET_LOG_LEVEL", "info") == "debug" {
		logger.SetLevel(log.DebugLevel)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	mode := os.Args[1]
	args := os.Args[2:]

	var err error
	switch mode {
	case "convert":
		err = runConvert(logger, args)
	case "cooccur":
		err = runCoOccur(logger, args)
	case "score":
		err = runScore(logger, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", mode)
		usage()
		os.Exit(1)
	}

	if err != nil {
		logger.Fatal("command failed", "mode", mode, "err", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: textnet <mode> [args]")
	fmt.Fprintln(os.Stderr, "Modes:")
	fmt.Fprintln(os.Stderr, "  convert <edge_file> <output> [vertex_file]  - build a graph and export it")
	fmt.Fprintln(os.Stderr, "  cooccur <membership_file> <output>          - entity co-occurrence graph")
	fmt.Fprintln(os.Stderr, "  score   <corpus_file> <lexicon_file>        - dictionary-score a corpus")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment:")
	fmt.Fprintln(os.Stderr, "  TEXTNET_DIRECTED=true|false   treat edge lists as directed (default false)")
	fmt.Fprintln(os.Stderr, "  TEXTNET_WORKERS=<n>           scoring worker count")
	fmt.Fprintln(os.Stderr, "  TEXTNET_LOG_LEVEL=debug|info  log verbosity")
}

func runConvert(logger *log.Logger, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("convert requires an edge file and an output path")
	}
	edgeFile, outputPath := args[0], args[1]
	directed := config.GetEnvBool("TEXTNET_DIRECTED", false)

	edges, err := relgraph.ParseEdgeList(edgeFile)
	if err != nil {
		return fmt.Errorf("failed to parse edge list: %w", err)
	}
	logger.Debug("parsed edge list", "file", edgeFile, "edges", len(edges))

	var vertices []relgraph.Vertex
	if len(args) >= 3 {
		vertices, err = relgraph.ParseVertexList(args[2])
		if err != nil {
			return fmt.Errorf("failed to parse vertex list: %w", err)
		}
	}

	graph, err := relgraph.BuildGraph(edges, vertices, directed)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	stats := graph.Stats()
	logger.Info("graph built",
		"vertices", stats.VertexCount,
		"edges", stats.EdgeCount,
		"isolated", stats.IsolatedCount,
		"total_weight", stats.TotalWeight,
		"directed", directed)

	if err := relgraph.SaveGraph(graph, outputPath); err != nil {
		return fmt.Errorf("failed to save graph: %w", err)
	}
	logger.Info("graph saved", "path", outputPath)

	return nil
}

func runCoOccur(logger *log.Logger, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("cooccur requires a membership file and an output path")
	}
	membershipFile, outputPath := args[0], args[1]

	memberships, err := relgraph.ParseMembershipList(membershipFile)
	if err != nil {
		return fmt.Errorf("failed to parse membership list: %w", err)
	}
	logger.Debug("parsed memberships", "file", membershipFile, "groups", len(memberships))

	incidence, err := relgraph.BuildIncidence(memberships)
	if err != nil {
		return fmt.Errorf("failed to build incidence matrix: %w", err)
	}

	cooc, err := relgraph.CoOccurrence(incidence, relgraph.CoOccurrenceOptions{})
	if err != nil {
		return fmt.Errorf("failed to compute co-occurrence: %w", err)
	}

	graph, err := cooc.ToGraph(false)
	if err != nil {
		return fmt.Errorf("failed to convert co-occurrence matrix: %w", err)
	}

	stats := graph.Stats()
	logger.Info("co-occurrence graph built",
		"entities", stats.VertexCount,
		"pairs", stats.EdgeCount)

	if err := relgraph.SaveGraph(graph, outputPath); err != nil {
		return fmt.Errorf("failed to save graph: %w", err)
	}
	logger.Info("graph saved", "path", outputPath)

	return nil
}

func runScore(logger *log.Logger, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("score requires a corpus file and a lexicon file")
	}
	corpusFile, lexiconFile := args[0], args[1]

	docs, err := lexicon.LoadCorpusFile(corpusFile)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	lex, err := lexicon.LoadLexiconFile(lexiconFile)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	logger.Info("inputs loaded", "documents", len(docs), "lexicon_words", lex.Size())

	scoringConfig := lexicon.DefaultScoringConfig()
	scoringConfig.Workers = config.GetEnvInt("TEXTNET_WORKERS", scoringConfig.Workers)

	tally := lexicon.NewMatchTally()
	records, err := lexicon.ScoreCorpus(context.Background(), docs, lex, scoringConfig, tally)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	for _, record := range records {
		ratio := record.SentimentRatio(lexicon.NetOverSentiment, scoringConfig)
		ratioStr := "undefined"
		if !math.IsNaN(ratio) {
			ratioStr = fmt.Sprintf("%.4f", ratio)
		}
		fmt.Printf("%s\ttokens=%d\tpositive=%d\tnegative=%d\tsentiment=%s\n",
			record.DocID,
			record.TotalTokens,
			record.Counts[scoringConfig.PositiveCategory],
			record.Counts[scoringConfig.NegativeCategory],
			ratioStr)
	}

	unmatched := lex.NeverMatched(tally)
	logger.Info("scoring complete",
		"documents", len(records),
		"lexicon_words_never_matched", len(unmatched))
	if len(unmatched) > 0 {
		logger.Debug("never matched", "words", unmatched)
	}

	return nil
}
