package relgraph

import (
	"sort"
)

// ToSparse converts the graph into its sparse adjacency matrix. The matrix
// axes are the sorted vertex IDs, so the same graph always yields the same
// cell layout.
//
// For undirected graphs both (i,j) and (j,i) are materialized unless
// opts.UpperTriangleOnly is set. The cell value is the edge Weight unless
// opts.WeightAttribute names an edge attribute, in which case every edge
// must carry that attribute with a numeric value.
func (g *Graph) ToSparse(opts SparseOptions) (*SparseMatrix, error) {
	labels := g.SortedVertexIDs()
	matrix := NewSparseMatrix(labels, labels)

	// Accumulate into a map first: parallel edges between the same pair
	// collapse into one cell with summed weight.
	type cellKey struct{ row, col int }
	values := make(map[cellKey]float64)

	for _, edge := range g.Edges {
		value, err := edgeValue(edge, opts.WeightAttribute)
		if err != nil {
			return nil, err
		}

		i := matrix.RowIndex[edge.From]
		j := matrix.ColIndex[edge.To]

		if g.Directed {
			values[cellKey{i, j}] += value
			continue
		}

		if opts.UpperTriangleOnly {
			if i > j {
				i, j = j, i
			}
			values[cellKey{i, j}] += value
			continue
		}

		values[cellKey{i, j}] += value
		if i != j {
			values[cellKey{j, i}] += value
		}
	}

	for key, value := range values {
		if value == 0 {
			continue
		}
		matrix.Cells = append(matrix.Cells, Cell{Row: key.row, Col: key.col, Value: value})
	}
	sortCells(matrix.Cells)

	return matrix, nil
}

// edgeValue resolves the cell value for an edge: the named attribute when
// configured, else the weight field with 1.0 as default
func edgeValue(edge Edge, weightAttribute string) (float64, error) {
	if weightAttribute == "" {
		if edge.Weight == 0 {
			return 1.0, nil
		}
		return edge.Weight, nil
	}

	raw, ok := edge.Attrs[weightAttribute]
	if !ok {
		return 0, MissingAttributeError{Attribute: weightAttribute, From: edge.From, To: edge.To}
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, MissingAttributeError{Attribute: weightAttribute, From: edge.From, To: edge.To}
	}
}

// ToEdges converts a square sparse adjacency matrix back into an edge list.
//
// For undirected input, symmetric cell pairs are deduplicated so each
// unordered pair yields exactly one edge. Skipping this would double the
// edge count on every matrix round trip, so it is part of the contract
// rather than an implementation nicety. Upper-triangular input (where only
// one orientation was materialized) converts correctly through the same
// path since each pair then appears once anyway.
func (m *SparseMatrix) ToEdges(directed bool) ([]Edge, error) {
	if !m.IsSquare() {
		return nil, DimensionMismatchError{
			Op:     "sparse_to_edges",
			Rows:   m.Rows,
			Cols:   m.Cols,
			Detail: "adjacency matrix must be square with identical axis labels",
		}
	}

	for _, cell := range m.Cells {
		if cell.Row < 0 || cell.Row >= m.Rows || cell.Col < 0 || cell.Col >= m.Cols {
			return nil, DimensionMismatchError{
				Op:     "sparse_to_edges",
				Rows:   m.Rows,
				Cols:   m.Cols,
				Detail: "cell index out of range",
			}
		}
	}

	edges := make([]Edge, 0, len(m.Cells))

	if directed {
		for _, cell := range m.Cells {
			if cell.Value == 0 {
				continue
			}
			edges = append(edges, Edge{
				From:   m.RowLabels[cell.Row],
				To:     m.ColLabels[cell.Col],
				Weight: cell.Value,
			})
		}
		return edges, nil
	}

	type pairKey struct{ low, high int }
	seen := make(map[pairKey]bool)

	for _, cell := range m.Cells {
		if cell.Value == 0 {
			continue
		}
		low, high := cell.Row, cell.Col
		if low > high {
			low, high = high, low
		}
		key := pairKey{low, high}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, Edge{
			From:   m.RowLabels[low],
			To:     m.ColLabels[high],
			Weight: cell.Value,
		})
	}

	return edges, nil
}

// ToGraph converts a square sparse adjacency matrix into a full Graph,
// preserving vertices whose rows hold no non-zero cells as isolated.
func (m *SparseMatrix) ToGraph(directed bool) (*Graph, error) {
	edges, err := m.ToEdges(directed)
	if err != nil {
		return nil, err
	}

	vertices := make([]Vertex, 0, len(m.RowLabels))
	for _, label := range m.RowLabels {
		vertices = append(vertices, Vertex{ID: label})
	}

	return BuildGraph(edges, vertices, directed)
}

// sortCells orders cells row-major for stable output
func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
