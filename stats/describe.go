package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// ColumnSummary holds the descriptive statistics of one numeric column,
// computed over its observed values. Std is the sample standard deviation.
type ColumnSummary struct {
	Column  string
	Count   int
	Missing int
	Mean    float64
	Std     float64
	Min     float64
	Q1      float64
	Median  float64
	Q3      float64
	Max     float64
}

// Describe summarizes every float column of the table. Columns with no
// observed values yield a DiagnosticError naming the column.
func Describe(df dataframe.DataFrame) ([]ColumnSummary, error) {
	names := df.Names()
	types := df.Types()

	summaries := make([]ColumnSummary, 0, len(names))
	for i, name := range names {
		if types[i] != series.Float {
			continue
		}

		values := df.Col(name).Float()
		obs := Observed(values)
		if len(obs) == 0 {
			return nil, errors.NewDiagnosticError("describe", name, "column has no observed values")
		}

		q1, err := Quantile(name, obs, 0.25)
		if err != nil {
			return nil, err
		}
		median, err := Quantile(name, obs, 0.5)
		if err != nil {
			return nil, err
		}
		q3, err := Quantile(name, obs, 0.75)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ColumnSummary{
			Column:  name,
			Count:   len(obs),
			Missing: len(values) - len(obs),
			Mean:    stat.Mean(obs, nil),
			Std:     stat.StdDev(obs, nil),
			Min:     floats.Min(obs),
			Q1:      q1,
			Median:  median,
			Q3:      q3,
			Max:     floats.Max(obs),
		})
	}

	if len(summaries) == 0 {
		return nil, errors.NewDiagnosticError("describe", "", "table has no numeric columns")
	}
	return summaries, nil
}
