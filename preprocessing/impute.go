package preprocessing

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/stats"
)

// DropIncompleteRows removes every row containing a missing cell in any
// float column. The result may be empty when every row has at least one
// missing cell; the evaluator rejects empty tables downstream.
func DropIncompleteRows(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "DropIncompleteRows")
	}

	names := df.Names()
	types := df.Types()

	incomplete := make([]bool, df.Nrow())
	for i, name := range names {
		if types[i] != series.Float {
			continue
		}
		for row, v := range df.Col(name).Float() {
			if math.IsNaN(v) {
				incomplete[row] = true
			}
		}
	}

	keep := make([]int, 0, df.Nrow())
	for row, bad := range incomplete {
		if !bad {
			keep = append(keep, row)
		}
	}

	out := df.Subset(keep)
	if out.Err != nil {
		return df, errors.Wrap(out.Err, "DropIncompleteRows")
	}
	return out, nil
}

// ImputeMedian replaces missing cells in every float column with that
// column's median over its observed values. Row count and columns are
// unchanged. A column with no observed values has no median and yields a
// DiagnosticError instead of a silent zero fill.
func ImputeMedian(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "ImputeMedian")
	}

	names := df.Names()
	types := df.Types()

	out := df.Copy()
	for i, name := range names {
		if types[i] != series.Float {
			continue
		}

		values := out.Col(name).Float()
		if stats.CountMissing(values) == 0 {
			continue
		}

		median, err := stats.Median(name, values)
		if err != nil {
			return df, err
		}

		for row, v := range values {
			if math.IsNaN(v) {
				values[row] = median
			}
		}

		out = out.Mutate(series.New(values, series.Float, name))
		if out.Err != nil {
			return df, errors.Wrap(out.Err, "ImputeMedian")
		}
	}

	return out, nil
}
