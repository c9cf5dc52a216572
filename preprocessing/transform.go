package preprocessing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/stats"
)

// LogTransform replaces every observed value v in the named column with
// ln(v). Missing cells stay missing. Any observed value ≤ 0 is a
// DomainError carrying the offending row.
func LogTransform(df dataframe.DataFrame, column string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "LogTransform")
	}

	col := df.Col(column)
	if col.Err != nil {
		return df, errors.NewValueError("LogTransform", col.Err.Error())
	}

	values := col.Float()
	for row, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v <= 0 {
			return df, errors.NewDomainError("log_transform", column, row, v)
		}
		values[row] = math.Log(v)
	}

	out := df.Mutate(series.New(values, series.Float, column))
	if out.Err != nil {
		return df, errors.Wrap(out.Err, "LogTransform")
	}
	return out, nil
}

// FilterPercentile removes every row whose observed value in the named
// column is greater than or equal to the p-th percentile (0 < p < 100) of
// the column's observed values. Rows with a missing cell in the column are
// retained; the filter judges observed values only.
func FilterPercentile(df dataframe.DataFrame, column string, p float64) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "FilterPercentile")
	}
	if p <= 0 || p >= 100 {
		return df, errors.NewValueError("FilterPercentile", "percentile must be in (0, 100)")
	}

	col := df.Col(column)
	if col.Err != nil {
		return df, errors.NewValueError("FilterPercentile", col.Err.Error())
	}

	values := col.Float()
	threshold, err := stats.Quantile(column, values, p/100)
	if err != nil {
		return df, err
	}

	keep := make([]int, 0, len(values))
	for row, v := range values {
		if math.IsNaN(v) || v < threshold {
			keep = append(keep, row)
		}
	}

	if removed := len(values) - len(keep); float64(removed) > 0.25*float64(len(values)) {
		errors.Warn(errors.NewDataQualityWarning("filter_percentile", column,
			fmt.Sprintf("removed %d of %d rows at the %.1f percentile", removed, len(values), p)))
	}

	out := df.Subset(keep)
	if out.Err != nil {
		return df, errors.Wrap(out.Err, "FilterPercentile")
	}
	return out, nil
}

// DropColumns removes the named columns from the table. Naming a column the
// table does not have is an error.
func DropColumns(df dataframe.DataFrame, columns ...string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "DropColumns")
	}

	drop := make(map[string]bool, len(columns))
	for _, c := range columns {
		drop[c] = true
	}

	names := df.Names()
	remaining := make([]string, 0, len(names))
	for _, name := range names {
		if drop[name] {
			delete(drop, name)
			continue
		}
		remaining = append(remaining, name)
	}
	if len(drop) > 0 {
		missing := make([]string, 0, len(drop))
		for name := range drop {
			missing = append(missing, name)
		}
		sort.Strings(missing)
		return df, errors.NewValueError("DropColumns", fmt.Sprintf("columns not in table: %s", strings.Join(missing, ", ")))
	}
	if len(remaining) == 0 {
		return df, errors.NewValueError("DropColumns", "dropping every column")
	}

	out := df.Select(remaining)
	if out.Err != nil {
		return df, errors.Wrap(out.Err, "DropColumns")
	}
	return out, nil
}

// OneHotEncode replaces the named categorical column with one indicator
// column per category, named column_category and appended in sorted
// category order.
func OneHotEncode(df dataframe.DataFrame, column string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "OneHotEncode")
	}

	col := df.Col(column)
	if col.Err != nil {
		return df, errors.NewValueError("OneHotEncode", col.Err.Error())
	}
	if col.Type() == series.Float {
		return df, errors.NewValueError("OneHotEncode", fmt.Sprintf("column %q is numeric", column))
	}

	records := col.Records()
	seen := map[string]bool{}
	categories := []string{}
	for _, v := range records {
		if !seen[v] {
			seen[v] = true
			categories = append(categories, v)
		}
	}
	sort.Strings(categories)

	out := df.Copy()
	for _, category := range categories {
		indicator := make([]float64, len(records))
		for row, v := range records {
			if v == category {
				indicator[row] = 1
			}
		}
		out = out.Mutate(series.New(indicator, series.Float, column+"_"+category))
		if out.Err != nil {
			return df, errors.Wrap(out.Err, "OneHotEncode")
		}
	}

	return DropColumns(out, column)
}
