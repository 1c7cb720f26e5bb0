package relgraph

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Membership records which entities belong to one group (a document's
// authors, an event's participants). The group axis becomes the rows of the
// incidence matrix and the entity axis its columns.
type Membership struct {
	GroupID  string   `json:"group_id"`
	Entities []string `json:"entities"`
}

// BuildIncidence constructs the group-by-entity incidence matrix from
// membership records. Cell (g,e) is 1 when entity e belongs to group g.
// Listing an entity twice in the same group still yields 1.
func BuildIncidence(memberships []Membership) (*SparseMatrix, error) {
	var errors ValidationErrors

	groupSeen := make(map[string]bool)
	entitySeen := make(map[string]bool)
	groupLabels := make([]string, 0, len(memberships))
	entityLabels := make([]string, 0)

	for i, membership := range memberships {
		if strings.TrimSpace(membership.GroupID) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("membership[%d].group_id", i),
				Message: "group ID cannot be empty",
			})
			continue
		}
		if groupSeen[membership.GroupID] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("membership[%d].group_id", i),
				Message: "duplicate group ID",
				Value:   membership.GroupID,
			})
			continue
		}
		groupSeen[membership.GroupID] = true
		groupLabels = append(groupLabels, membership.GroupID)

		for _, entity := range membership.Entities {
			if strings.TrimSpace(entity) == "" {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("membership[%d].entities", i),
					Message: "entity ID cannot be empty",
					Value:   membership.GroupID,
				})
				continue
			}
			if !entitySeen[entity] {
				entitySeen[entity] = true
				entityLabels = append(entityLabels, entity)
			}
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}

	sort.Strings(entityLabels)
	matrix := NewSparseMatrix(groupLabels, entityLabels)

	for _, membership := range memberships {
		row := matrix.RowIndex[membership.GroupID]
		marked := make(map[int]bool)
		for _, entity := range membership.Entities {
			col := matrix.ColIndex[entity]
			if marked[col] {
				continue
			}
			marked[col] = true
			matrix.Cells = append(matrix.Cells, Cell{Row: row, Col: col, Value: 1})
		}
	}
	sortCells(matrix.Cells)

	return matrix, nil
}

// CoOccurrence computes the entity-by-entity co-occurrence matrix from a
// group-by-entity incidence matrix: the product of the incidence transpose
// with itself, so cell (i,j) counts the groups containing both entity i and
// entity j. The diagonal (an entity with itself) is zeroed unless
// opts.KeepDiagonal is set.
func CoOccurrence(incidence *SparseMatrix, opts CoOccurrenceOptions) (*SparseMatrix, error) {
	if incidence.Rows == 0 || incidence.Cols == 0 {
		return nil, DimensionMismatchError{
			Op:     "co_occurrence",
			Rows:   incidence.Rows,
			Cols:   incidence.Cols,
			Detail: "incidence matrix must have at least one row and one column",
		}
	}

	dense := mat.NewDense(incidence.Rows, incidence.Cols, nil)
	for _, cell := range incidence.Cells {
		if cell.Row < 0 || cell.Row >= incidence.Rows || cell.Col < 0 || cell.Col >= incidence.Cols {
			return nil, DimensionMismatchError{
				Op:     "co_occurrence",
				Rows:   incidence.Rows,
				Cols:   incidence.Cols,
				Detail: "cell index out of range",
			}
		}
		dense.Set(cell.Row, cell.Col, cell.Value)
	}

	var product mat.Dense
	product.Mul(dense.T(), dense)

	result := NewSparseMatrix(incidence.ColLabels, incidence.ColLabels)
	n := incidence.Cols
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !opts.KeepDiagonal {
				continue
			}
			value := product.At(i, j)
			if value == 0 {
				continue
			}
			result.Cells = append(result.Cells, Cell{Row: i, Col: j, Value: value})
		}
	}

	return result, nil
}
