// Package evaluation runs preprocessing ablations over a table and scores
// each one with an ordinary least squares fit on a seeded train/test split.
// Configurations are independent: each one works on its own copy of the
// input table and a failure in one never affects the others.
package evaluation

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/dataset"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/preprocessing"
)

// OutlierFilter names a column and the percentile at or above which rows
// are removed.
type OutlierFilter struct {
	Column     string
	Percentile float64
}

// Config is an immutable record describing one preprocessing ablation.
// Steps apply in a fixed order: drop incomplete rows, median imputation,
// log transforms, the outlier filter, one-hot encoding, column drops, then
// optional standardization inside the evaluator. One-hot runs before the
// drops so a configuration can discard one indicator and keep the design
// matrix full rank. Callers needing a different order compose the
// preprocessing primitives directly.
type Config struct {
	// Name identifies the configuration in reports and logs.
	Name string

	// DropRows removes every row containing a missing cell.
	DropRows bool

	// ImputeMedian replaces missing cells with their column median.
	ImputeMedian bool

	// LogColumns lists columns to replace with their natural logarithm.
	LogColumns []string

	// Filter, when set, removes rows at or above a percentile of a column.
	Filter *OutlierFilter

	// DropColumns lists columns to remove before fitting.
	DropColumns []string

	// OneHotColumns lists categorical columns to expand into indicators.
	OneHotColumns []string

	// Standardize scales features to zero mean and unit variance, fitted
	// on the training partition only.
	Standardize bool
}

// DefaultRegressionConfigs returns the five ablations compared on the
// regression dataset, from the row-dropping baseline to the full stack of
// imputation, log transform, outlier filtering and a column drop.
func DefaultRegressionConfigs() []Config {
	skewed := dataset.SkewedColumn
	return []Config{
		{
			Name:     "baseline_drop_rows",
			DropRows: true,
		},
		{
			Name:         "median_impute",
			ImputeMedian: true,
		},
		{
			Name:         "median_impute_log",
			ImputeMedian: true,
			LogColumns:   []string{skewed},
		},
		{
			Name:         "median_impute_log_filter",
			ImputeMedian: true,
			LogColumns:   []string{skewed},
			Filter:       &OutlierFilter{Column: skewed, Percentile: 99},
		},
		{
			Name:         "median_impute_log_filter_drop",
			ImputeMedian: true,
			LogColumns:   []string{skewed},
			Filter:       &OutlierFilter{Column: skewed, Percentile: 99},
			DropColumns:  []string{"s3"},
		},
	}
}

// Apply runs the configuration's preprocessing steps over a copy of df and
// returns the cleaned table. The input is never mutated.
func Apply(df dataframe.DataFrame, cfg Config) (dataframe.DataFrame, error) {
	out := df.Copy()
	var err error

	if cfg.DropRows {
		if out, err = preprocessing.DropIncompleteRows(out); err != nil {
			return df, err
		}
	}
	if cfg.ImputeMedian {
		if out, err = preprocessing.ImputeMedian(out); err != nil {
			return df, err
		}
	}
	for _, column := range cfg.LogColumns {
		if out, err = preprocessing.LogTransform(out, column); err != nil {
			return df, err
		}
	}
	if cfg.Filter != nil {
		if out, err = preprocessing.FilterPercentile(out, cfg.Filter.Column, cfg.Filter.Percentile); err != nil {
			return df, err
		}
	}
	for _, column := range cfg.OneHotColumns {
		if out, err = preprocessing.OneHotEncode(out, column); err != nil {
			return df, err
		}
	}
	if len(cfg.DropColumns) > 0 {
		if out, err = preprocessing.DropColumns(out, cfg.DropColumns...); err != nil {
			return df, err
		}
	}

	return out, nil
}
