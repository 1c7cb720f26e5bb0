package relgraph

import (
	"fmt"
	"sort"
	"strings"
)

// BuildGraph constructs a Graph from an edge list and an optional explicit
// vertex list.
//
// When vertices is nil the vertex set is inferred as the union of all edge
// endpoints. When vertices is supplied, any vertex not referenced by an edge
// is retained as isolated, and an edge referencing a vertex absent from the
// supplied set is a validation error rather than an implicit insertion.
func BuildGraph(edges []Edge, vertices []Vertex, directed bool) (*Graph, error) {
	graph := &Graph{
		Directed:   directed,
		Vertices:   make(map[string]Vertex),
		Edges:      make([]Edge, 0, len(edges)),
		VertexList: make([]string, 0),
	}

	var errors ValidationErrors
	explicit := vertices != nil

	for i, vertex := range vertices {
		if strings.TrimSpace(vertex.ID) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("vertex[%d].id", i),
				Message: "vertex ID cannot be empty or whitespace",
			})
			continue
		}
		if _, exists := graph.Vertices[vertex.ID]; exists {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("vertex[%d].id", i),
				Message: "duplicate vertex ID",
				Value:   vertex.ID,
			})
			continue
		}
		graph.addVertex(vertex)
	}

	for i, edge := range edges {
		fieldPrefix := fmt.Sprintf("edge[%d]", i)

		if strings.TrimSpace(edge.From) == "" {
			errors = append(errors, ValidationError{
				Field:   fieldPrefix + ".from",
				Message: "from vertex ID cannot be empty",
			})
			continue
		}
		if strings.TrimSpace(edge.To) == "" {
			errors = append(errors, ValidationError{
				Field:   fieldPrefix + ".to",
				Message: "to vertex ID cannot be empty",
			})
			continue
		}

		if explicit {
			if _, exists := graph.Vertices[edge.From]; !exists {
				errors = append(errors, ValidationError{
					Field:   fieldPrefix + ".from",
					Message: "edge references vertex not in supplied vertex set",
					Value:   edge.From,
				})
				continue
			}
			if _, exists := graph.Vertices[edge.To]; !exists {
				errors = append(errors, ValidationError{
					Field:   fieldPrefix + ".to",
					Message: "edge references vertex not in supplied vertex set",
					Value:   edge.To,
				})
				continue
			}
		} else {
			graph.ensureVertex(edge.From)
			graph.ensureVertex(edge.To)
		}

		if edge.Weight == 0 {
			edge.Weight = 1.0 // Default weight
		}
		graph.Edges = append(graph.Edges, edge)
	}

	if len(errors) > 0 {
		return nil, errors
	}

	return graph, nil
}

// addVertex inserts a vertex known to be new
func (g *Graph) addVertex(vertex Vertex) {
	if vertex.Attrs == nil {
		vertex.Attrs = make(map[string]interface{})
	}
	g.Vertices[vertex.ID] = vertex
	g.VertexList = append(g.VertexList, vertex.ID)
}

// ensureVertex inserts a bare vertex for an endpoint seen for the first time
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.Vertices[id]; exists {
		return
	}
	g.addVertex(Vertex{ID: id})
}

// SortedVertexIDs returns the vertex IDs in lexicographic order. Conversion
// code uses this so matrix axes are deterministic across runs.
func (g *Graph) SortedVertexIDs() []string {
	ids := make([]string, len(g.VertexList))
	copy(ids, g.VertexList)
	sort.Strings(ids)
	return ids
}
