package errors

import (
	"fmt"
	"math"
)

// CheckFinite returns a ShapeError if values contain NaN or Inf. The model
// evaluator uses this to reject tables where missing cells survived
// preprocessing.
func CheckFinite(op, column string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewShapeError(op, column, "non-finite value after preprocessing")
		}
	}
	return nil
}

// CheckFiniteMatrix checks every entry of a matrix for NaN or Inf.
func CheckFiniteMatrix(op string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewShapeError(op, "", fmt.Sprintf("non-finite value %v at (%d,%d)", v, i, j))
			}
		}
	}
	return nil
}
