package linalg

import (
	"fmt"
	"strings"
)

// Matrix is a matrix over GF(2), stored row-major. Every row is a
// Vector whose dimension equals the column count.
type Matrix struct {
	rows    int
	columns int
	data    []Vector
}

// NewMatrix returns the zero matrix with the given dimensions.
func NewMatrix(rows, columns int) Matrix {
	data := make([]Vector, rows)
	for i := range data {
		data[i] = NewVector(columns)
	}
	return Matrix{rows: rows, columns: columns, data: data}
}

// OnesMatrix returns the matrix with the given dimensions where every
// element is 1.
func OnesMatrix(rows, columns int) Matrix {
	data := make([]Vector, rows)
	for i := range data {
		data[i] = OnesVector(columns)
	}
	return Matrix{rows: rows, columns: columns, data: data}
}

// Identity returns the identity matrix of the given dimension.
func Identity(dimension int) Matrix {
	m := NewMatrix(dimension, dimension)
	for i := 0; i < dimension; i++ {
		m.SetElement(i, i, 1)
	}
	return m
}

// RandomMatrix returns a matrix with the given dimensions whose rows
// are uniformly random.
func RandomMatrix(rows, columns int) Matrix {
	data := make([]Vector, rows)
	for i := range data {
		data[i] = RandomVector(columns)
	}
	return Matrix{rows: rows, columns: columns, data: data}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return m.rows
}

// Columns returns the number of columns.
func (m Matrix) Columns() int {
	return m.columns
}

// GetElement returns the element at (row, column). It panics if either
// index is out of range.
func (m Matrix) GetElement(row, column int) uint8 {
	m.checkRow(row)
	return m.data[row].GetElement(column)
}

// SetElement sets the element at (row, column). It panics if either
// index is out of range.
func (m *Matrix) SetElement(row, column int, value uint8) {
	m.checkRow(row)
	m.data[row].SetElement(column, value)
}

// AddToElement adds value to the element at (row, column). It panics if
// either index is out of range.
func (m *Matrix) AddToElement(row, column int, value uint8) {
	m.checkRow(row)
	m.data[row].AddToElement(column, value)
}

// GetRow returns a copy of the given row.
func (m Matrix) GetRow(row int) Vector {
	m.checkRow(row)
	return m.data[row].Clone()
}

// SetRow replaces the given row with a copy of value. It panics if the
// row index is out of range or if value has the wrong dimension.
func (m *Matrix) SetRow(row int, value Vector) {
	m.checkRow(row)
	if value.Dimension() != m.columns {
		panic(fmt.Sprintf("linalg: row has dimension %d, matrix has %d columns", value.Dimension(), m.columns))
	}
	m.data[row] = value.Clone()
}

// SwapRows exchanges the two given rows. It panics if either index is
// out of range.
func (m *Matrix) SwapRows(first, second int) {
	m.checkRow(first)
	m.checkRow(second)
	m.data[first], m.data[second] = m.data[second], m.data[first]
}

// AddToRow adds value into the given row. It panics if the row index is
// out of range or if value has the wrong dimension.
func (m *Matrix) AddToRow(row int, value Vector) {
	m.checkRow(row)
	m.data[row].AddInPlace(value)
}

// Add returns the sum m + other. It panics if the dimensions differ.
func (m Matrix) Add(other Matrix) Matrix {
	result := m.Clone()
	result.AddInPlace(other)
	return result
}

// AddInPlace adds other into m. It panics if the dimensions differ.
func (m *Matrix) AddInPlace(other Matrix) {
	if m.rows != other.rows || m.columns != other.columns {
		panic(fmt.Sprintf("linalg: matrices have different dimensions: %dx%d != %dx%d",
			m.rows, m.columns, other.rows, other.columns))
	}
	for i := range m.data {
		m.data[i].AddInPlace(other.data[i])
	}
}

// ShiftDown returns a new matrix where row i is row i-k of m, and the
// first k rows are zero. As a linear operator on column vectors this is
// multiplication by x << k.
func (m Matrix) ShiftDown(k int) Matrix {
	result := NewMatrix(m.rows, m.columns)
	for i := k; i < m.rows; i++ {
		result.data[i] = m.data[i-k].Clone()
	}
	return result
}

// ShiftUp returns a new matrix where row i is row i+k of m, and the
// last k rows are zero. As a linear operator on column vectors this is
// multiplication by x >> k.
func (m Matrix) ShiftUp(k int) Matrix {
	result := NewMatrix(m.rows, m.columns)
	for i := 0; i+k < m.rows; i++ {
		result.data[i] = m.data[i+k].Clone()
	}
	return result
}

// Mask returns a new matrix where row i is row i of m if element i of
// the selector is 1, and a zero row otherwise. It panics if the
// selector dimension differs from the row count.
func (m Matrix) Mask(selector Vector) Matrix {
	if selector.Dimension() != m.rows {
		panic(fmt.Sprintf("linalg: selector has dimension %d, matrix has %d rows", selector.Dimension(), m.rows))
	}
	result := NewMatrix(m.rows, m.columns)
	for i := 0; i < m.rows; i++ {
		if selector.GetElement(i) == 1 {
			result.data[i] = m.data[i].Clone()
		}
	}
	return result
}

// MulVector returns the product m · v. It panics if the dimension of v
// differs from the column count.
func (m Matrix) MulVector(v Vector) Vector {
	if v.Dimension() != m.columns {
		panic(fmt.Sprintf("linalg: vector has dimension %d, matrix has %d columns", v.Dimension(), m.columns))
	}
	result := NewVector(m.rows)
	for i := 0; i < m.rows; i++ {
		var bit uint8
		for j := 0; j < m.columns; j++ {
			bit ^= m.data[i].GetElement(j) & v.GetElement(j)
		}
		result.SetElement(i, bit)
	}
	return result
}

// Clone returns a copy of the matrix with its own backing storage.
func (m Matrix) Clone() Matrix {
	data := make([]Vector, m.rows)
	for i := range data {
		data[i] = m.data[i].Clone()
	}
	return Matrix{rows: m.rows, columns: m.columns, data: data}
}

// Equal reports whether m and other have the same dimensions and
// elements.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.columns != other.columns {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		left, right := "| ", " |"
		switch {
		case m.rows == 1:
			left, right = "( ", " )"
		case i == 0:
			left, right = "/ ", " \\"
		case i == m.rows-1:
			left, right = "\\ ", " /"
		}
		sb.WriteString(left)
		for j := 0; j < m.columns; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.GetElement(i, j))
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Matrix) checkRow(row int) {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("linalg: row index out of range: %d with %d rows", row, m.rows))
	}
}
