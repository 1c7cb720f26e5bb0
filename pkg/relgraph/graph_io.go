package relgraph

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// SaveGraph saves a graph to file. Format is determined by extension:
// .csv, .json, or anything else as a plain edge list.
func SaveGraph(graph *Graph, outputPath string) error {
	if graph == nil {
		return fmt.Errorf("graph cannot be nil")
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(outputPath))
	switch ext {
	case ".csv":
		return SaveAsCSV(graph, outputPath)
	case ".json":
		return SaveAsJSON(graph, outputPath)
	default:
		return SaveAsEdgeList(graph, outputPath)
	}
}

// SaveAsEdgeList writes "vertices edges" as a header line followed by one
// "from to weight" line per edge. Interchange tools consuming vertex+edge
// lists (GraphML converters and the like) read this directly.
func SaveAsEdgeList(graph *Graph, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "%d %d\n", len(graph.Vertices), len(graph.Edges))
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, edge := range graph.Edges {
		_, err = fmt.Fprintf(file, "%s %s %.6f\n", edge.From, edge.To, edge.Weight)
		if err != nil {
			return fmt.Errorf("failed to write edge: %w", err)
		}
	}

	return nil
}

// SaveAsCSV writes edges only, with header from,to,weight. Use
// SaveVertexList alongside it when isolates matter to the consumer.
func SaveAsCSV(graph *Graph, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"from", "to", "weight"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, edge := range graph.Edges {
		record := []string{
			edge.From,
			edge.To,
			strconv.FormatFloat(edge.Weight, 'f', 6, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}

// SaveAsJSON writes the complete graph, attributes included
func SaveAsJSON(graph *Graph, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(graph); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// SaveVertexList writes one "id [key=value ...]" line per vertex in sorted
// order, the inverse of ParseVertexList.
func SaveVertexList(graph *Graph, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	for _, id := range graph.SortedVertexIDs() {
		vertex := graph.Vertices[id]

		keys := make([]string, 0, len(vertex.Attrs))
		for key := range vertex.Attrs {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		line := vertex.ID
		for _, key := range keys {
			line += fmt.Sprintf(" %s=%v", key, vertex.Attrs[key])
		}

		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("failed to write vertex: %w", err)
		}
	}

	return nil
}
