package stats

import (
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// ClassCount is one category of a categorical column with its row count.
type ClassCount struct {
	Class string
	Count int
}

// ClassBalance counts the rows per category of the named column. Categories
// are returned in sorted order.
func ClassBalance(df dataframe.DataFrame, column string) ([]ClassCount, error) {
	col := df.Col(column)
	if col.Err != nil {
		return nil, errors.NewValueError("ClassBalance", col.Err.Error())
	}
	if df.Nrow() == 0 {
		return nil, errors.NewDiagnosticError("class_balance", column, "table has no rows")
	}

	counts := map[string]int{}
	for _, v := range col.Records() {
		counts[v]++
	}

	out := make([]ClassCount, 0, len(counts))
	for class, count := range counts {
		out = append(out, ClassCount{Class: class, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })

	return out, nil
}
