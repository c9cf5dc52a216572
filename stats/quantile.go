// Package stats implements the pipeline's diagnostics: descriptive
// statistics, quantiles, the Shapiro-Wilk normality test and class balance.
//
// One quantile convention is used everywhere a percentile, quartile or
// median is computed: linear interpolation between the closest ranks of the
// observed (non-missing) values. The reported numbers are only reproducible
// under a single fixed convention, so no caller gets to pick another one.
package stats

import (
	"math"
	"sort"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// Observed returns the non-missing (non-NaN) values in input order.
func Observed(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountMissing returns the number of missing (NaN) cells in values.
func CountMissing(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Quantile returns the p-quantile (0 ≤ p ≤ 1) of the observed values in the
// named column, interpolating linearly between the closest ranks. The column
// name is carried for error context only.
func Quantile(column string, values []float64, p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.NewValueError("Quantile", "p must be in [0, 1]")
	}

	obs := Observed(values)
	if len(obs) == 0 {
		return 0, errors.NewDiagnosticError("quantile", column, "column has no observed values")
	}

	sorted := make([]float64, len(obs))
	copy(sorted, obs)
	sort.Float64s(sorted)

	// Rank position h = p·(n−1); interpolate between floor(h) and floor(h)+1.
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}

// Median returns the median of the observed values in the named column.
func Median(column string, values []float64) (float64, error) {
	m, err := Quantile(column, values, 0.5)
	if err != nil {
		var valueErr *errors.ValueError
		if errors.As(err, &valueErr) {
			return 0, err
		}
		return 0, errors.NewDiagnosticError("median", column, "column has no observed values")
	}
	return m, nil
}
