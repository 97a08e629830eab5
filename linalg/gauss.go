package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderDeterminedSystem is returned when the coefficient matrix
	// does not have full column rank, so no unique solution exists.
	ErrUnderDeterminedSystem = errors.New("linalg: under-determined system")

	// ErrInconsistentSystem is returned when an over-determined system
	// has no solution at all.
	ErrInconsistentSystem = errors.New("linalg: inconsistent system")
)

// GaussElimination solves the linear system lhs · x = rhs over GF(2).
//
// The solver takes ownership of its inputs and reduces them in place: a
// solver is built for one system, solved once, and discarded.
type GaussElimination struct {
	lhs Matrix
	rhs Vector
}

// NewGaussElimination returns a solver for the system lhs · x = rhs. It
// panics if the row count of lhs differs from the dimension of rhs.
func NewGaussElimination(lhs Matrix, rhs Vector) *GaussElimination {
	if lhs.Rows() != rhs.Dimension() {
		panic(fmt.Sprintf("linalg: system has %d rows but right-hand side has dimension %d",
			lhs.Rows(), rhs.Dimension()))
	}
	return &GaussElimination{lhs: lhs, rhs: rhs}
}

// pivot swaps a row with a non-zero entry in the given column into the
// working position.
func (g *GaussElimination) pivot(column int) error {
	for row := column; row < g.lhs.Rows(); row++ {
		if g.lhs.GetElement(row, column) != 0 {
			g.lhs.SwapRows(column, row)
			g.rhs.SwapElements(column, row)
			return nil
		}
	}
	return ErrUnderDeterminedSystem
}

// Solve reduces the system and returns its unique solution, if one
// exists. Rows are reduced both above and below the pivot, so a
// solvable system leaves the identity on the leading columns x columns
// block and the solution in the right-hand side.
func (g *GaussElimination) Solve() (Vector, error) {
	for column := 0; column < g.lhs.Columns(); column++ {
		if err := g.pivot(column); err != nil {
			return Vector{}, err
		}
		currentRow := g.lhs.GetRow(column)
		currentElement := g.rhs.GetElement(column)
		for row := 0; row < g.lhs.Rows(); row++ {
			if row == column {
				continue
			}
			if g.lhs.GetElement(row, column) == 1 {
				g.lhs.AddToRow(row, currentRow)
				g.rhs.AddToElement(row, currentElement)
			}
		}
	}
	// When the system has more rows than columns, every redundant
	// equation must have reduced to 0 = 0.
	for row := g.lhs.Columns(); row < g.lhs.Rows(); row++ {
		if g.rhs.GetElement(row) != 0 {
			return Vector{}, ErrInconsistentSystem
		}
	}
	return g.rhs.Clone(), nil
}
