package relgraph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseEdgeList reads a whitespace-separated edge list file. Each line is
//
//	from to [weight] [key=value ...]
//
// Blank lines and lines starting with '#' are skipped. A parseable third
// column becomes the edge weight; remaining key=value columns become edge
// attributes (numeric values are parsed as float64).
func ParseEdgeList(filename string) ([]Edge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list: %w", err)
	}
	defer file.Close()

	edges := make([]Edge, 0)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, ValidationError{
				Field:   fmt.Sprintf("line[%d]", lineNum),
				Message: "edge line needs at least a from and to column",
				Value:   line,
			}
		}

		edge := Edge{From: parts[0], To: parts[1], Weight: 1.0}
		rest := parts[2:]

		// Third column is a weight when it parses as a number
		if len(rest) > 0 && !strings.Contains(rest[0], "=") {
			weight, err := strconv.ParseFloat(rest[0], 64)
			if err != nil {
				return nil, ValidationError{
					Field:   fmt.Sprintf("line[%d].weight", lineNum),
					Message: "weight column is not numeric",
					Value:   rest[0],
				}
			}
			edge.Weight = weight
			rest = rest[1:]
		}

		for _, part := range rest {
			key, value, ok := strings.Cut(part, "=")
			if !ok || key == "" {
				return nil, ValidationError{
					Field:   fmt.Sprintf("line[%d].attrs", lineNum),
					Message: "attribute column must be key=value",
					Value:   part,
				}
			}
			if edge.Attrs == nil {
				edge.Attrs = make(map[string]interface{})
			}
			if num, err := strconv.ParseFloat(value, 64); err == nil {
				edge.Attrs[key] = num
			} else {
				edge.Attrs[key] = value
			}
		}

		edges = append(edges, edge)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list: %w", err)
	}
	return edges, nil
}

// ParseVertexList reads a vertex list file. Each line is
//
//	id [key=value ...]
//
// with the same comment and attribute conventions as ParseEdgeList.
func ParseVertexList(filename string) ([]Vertex, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open vertex list: %w", err)
	}
	defer file.Close()

	vertices := make([]Vertex, 0)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		vertex := Vertex{ID: parts[0]}

		for _, part := range parts[1:] {
			key, value, ok := strings.Cut(part, "=")
			if !ok || key == "" {
				return nil, ValidationError{
					Field:   fmt.Sprintf("line[%d].attrs", lineNum),
					Message: "attribute column must be key=value",
					Value:   part,
				}
			}
			if vertex.Attrs == nil {
				vertex.Attrs = make(map[string]interface{})
			}
			if num, err := strconv.ParseFloat(value, 64); err == nil {
				vertex.Attrs[key] = num
			} else {
				vertex.Attrs[key] = value
			}
		}

		vertices = append(vertices, vertex)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vertex list: %w", err)
	}
	return vertices, nil
}

// ParseMembershipList reads a membership file for incidence building. Each
// line is
//
//	groupID entity [entity ...]
func ParseMembershipList(filename string) ([]Membership, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open membership list: %w", err)
	}
	defer file.Close()

	memberships := make([]Membership, 0)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, ValidationError{
				Field:   fmt.Sprintf("line[%d]", lineNum),
				Message: "membership line needs a group ID and at least one entity",
				Value:   line,
			}
		}

		memberships = append(memberships, Membership{
			GroupID:  parts[0],
			Entities: parts[1:],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read membership list: %w", err)
	}
	return memberships, nil
}
