package relgraph

import (
	"fmt"
)

// Vertex represents a single vertex identified by a unique string ID
type Vertex struct {
	ID    string                 `json:"id"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// Edge represents a connection between two vertices
type Edge struct {
	From   string                 `json:"from"`
	To     string                 `json:"to"`
	Weight float64                `json:"weight"` // Edge weight (default 1.0)
	Attrs  map[string]interface{} `json:"attrs,omitempty"`
}

// Graph represents a set of vertices plus a set of edges. Directedness is a
// whole-graph property, not a per-edge one. For undirected graphs an edge
// (a,b) is stored once in the orientation it was supplied in.
type Graph struct {
	Directed   bool              `json:"directed"`
	Vertices   map[string]Vertex `json:"vertices"`
	Edges      []Edge            `json:"edges"`
	VertexList []string          `json:"-"` // Ordered vertex IDs for consistent iteration
}

// Cell represents a single non-zero entry of a sparse matrix
type Cell struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

// SparseMatrix represents a matrix storing only its non-zero cells as
// (row, col, value) triples. Rows and Cols are the full dimensions.
// Indices are 0-based internally; RowLabels/ColLabels carry vertex or
// entity identity, so callers never deal in raw indices themselves.
type SparseMatrix struct {
	Rows      int            `json:"rows"`
	Cols      int            `json:"cols"`
	RowLabels []string       `json:"row_labels"`
	ColLabels []string       `json:"col_labels"`
	RowIndex  map[string]int `json:"-"` // label -> row index (computed)
	ColIndex  map[string]int `json:"-"` // label -> col index (computed)
	Cells     []Cell         `json:"cells"`
}

// SparseOptions controls how a graph is turned into a sparse adjacency matrix
type SparseOptions struct {
	// WeightAttribute names the edge attribute holding the cell value.
	// Empty means: use the edge Weight field, defaulting to 1.0 when zero.
	WeightAttribute string `json:"weight_attribute"`
	// UpperTriangleOnly emits only (i,j) with i <= j for undirected graphs
	// instead of materializing both orientations.
	UpperTriangleOnly bool `json:"upper_triangle_only"`
}

// CoOccurrenceOptions controls co-occurrence computation
type CoOccurrenceOptions struct {
	// KeepDiagonal retains self-co-occurrence counts. Off by default since
	// self-pairs are meaningless for most relational analyses.
	KeepDiagonal bool `json:"keep_diagonal"`
}

// GraphStats provides basic graph metrics
type GraphStats struct {
	VertexCount   int     `json:"vertex_count"`
	EdgeCount     int     `json:"edge_count"`
	IsolatedCount int     `json:"isolated_count"`
	TotalWeight   float64 `json:"total_weight"`
}

// ValidationError represents a structured validation error
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

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}
	return fmt.Sprintf("%d validation errors: %s (and %d more)", len(ve), ve[0].Error(), len(ve)-1)
}

// MissingAttributeError reports an edge lacking a requested attribute
type MissingAttributeError struct {
	Attribute string `json:"attribute"`
	From      string `json:"from"`
	To        string `json:"to"`
}

func (e MissingAttributeError) Error() string {
	return fmt.Sprintf("edge %s->%s has no attribute '%s'", e.From, e.To, e.Attribute)
}

// DimensionMismatchError reports a matrix operation on incompatible shapes
type DimensionMismatchError struct {
	Op     string `json:"op"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Detail string `json:"detail"`
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: incompatible matrix shape %dx%d: %s", e.Op, e.Rows, e.Cols, e.Detail)
}

// NewSparseMatrix creates an empty sparse matrix with the given axis labels
func NewSparseMatrix(rowLabels, colLabels []string) *SparseMatrix {
	m := &SparseMatrix{
		Rows:      len(rowLabels),
		Cols:      len(colLabels),
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Cells:     make([]Cell, 0),
	}
	m.PopulateIndexMaps()
	return m
}

// PopulateIndexMaps fills in the label -> index maps from the label slices.
// Must be called after deserializing a matrix, mirroring how the labels are
// the persisted form and the maps are derived.
func (m *SparseMatrix) PopulateIndexMaps() {
	m.RowIndex = make(map[string]int, len(m.RowLabels))
	for i, label := range m.RowLabels {
		m.RowIndex[label] = i
	}
	m.ColIndex = make(map[string]int, len(m.ColLabels))
	for j, label := range m.ColLabels {
		m.ColIndex[label] = j
	}
}

// IsSquare reports whether the matrix has identical row and column axes
func (m *SparseMatrix) IsSquare() bool {
	if m.Rows != m.Cols {
		return false
	}
	for i := range m.RowLabels {
		if m.RowLabels[i] != m.ColLabels[i] {
			return false
		}
	}
	return true
}

// At returns the value at (row, col), 0 when the cell is not stored
func (m *SparseMatrix) At(row, col int) float64 {
	for _, c := range m.Cells {
		if c.Row == row && c.Col == col {
			return c.Value
		}
	}
	return 0
}

// AtLabels returns the value for a (rowLabel, colLabel) pair
func (m *SparseMatrix) AtLabels(rowLabel, colLabel string) float64 {
	i, ok := m.RowIndex[rowLabel]
	if !ok {
		return 0
	}
	j, ok := m.ColIndex[colLabel]
	if !ok {
		return 0
	}
	return m.At(i, j)
}

// Degree returns the weighted degree of a vertex (sum of incident edge
// weights; both directions count for directed graphs)
func (g *Graph) Degree(vertexID string) float64 {
	total := 0.0
	for _, edge := range g.Edges {
		if edge.From == vertexID {
			total += edge.Weight
		}
		if edge.To == vertexID && edge.From != edge.To {
			total += edge.Weight
		}
	}
	return total
}

// EdgeDegreeCount returns the number of edges touching a vertex
func (g *Graph) EdgeDegreeCount(vertexID string) int {
	count := 0
	for _, edge := range g.Edges {
		if edge.From == vertexID || edge.To == vertexID {
			count++
		}
	}
	return count
}

// Stats computes basic metrics over the graph
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.Vertices),
		EdgeCount:   len(g.Edges),
	}

	touched := make(map[string]bool)
	for _, edge := range g.Edges {
		touched[edge.From] = true
		touched[edge.To] = true
		stats.TotalWeight += edge.Weight
	}
	for id := range g.Vertices {
		if !touched[id] {
			stats.IsolatedCount++
		}
	}

	return stats
}

// HasEdge reports whether an edge exists between two vertices. For
// undirected graphs both orientations are checked.
func (g *Graph) HasEdge(from, to string) bool {
	for _, edge := range g.Edges {
		if edge.From == from && edge.To == to {
			return true
		}
		if !g.Directed && edge.From == to && edge.To == from {
			return true
		}
	}
	return false
}

// Validate checks structural consistency: every edge endpoint must
// reference a vertex present in the vertex set.
func (g *Graph) Validate() error {
	var errors ValidationErrors

	for i, edge := range g.Edges {
		if _, exists := g.Vertices[edge.From]; !exists {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("edge[%d].from", i),
				Message: "edge references vertex not in vertex set",
				Value:   edge.From,
			})
		}
		if _, exists := g.Vertices[edge.To]; !exists {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("edge[%d].to", i),
				Message: "edge references vertex not in vertex set",
				Value:   edge.To,
			})
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
