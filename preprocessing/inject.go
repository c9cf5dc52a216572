// Package preprocessing implements the pipeline's table transforms: the
// synthetic missingness injector, the cleaning strategies the ablations
// compare, categorical encoding and standardization.
//
// Every transform takes a dataframe and returns a new one; inputs are never
// mutated. Missing cells are NaN in float columns, gota's native NA marker.
package preprocessing

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// InjectOptions configures the missingness injector.
type InjectOptions struct {
	// Fraction of rows to null per chosen column, in [0, 1).
	Fraction float64

	// Columns is how many feature columns to pick, uniformly without
	// replacement.
	Columns int

	// Seed drives both the column choice and the per-column row choice.
	// The injection is fully deterministic given the seed.
	Seed uint64
}

// DefaultInjectOptions mirrors the defaults of the analysis: 10% missing
// cells in three feature columns.
func DefaultInjectOptions() InjectOptions {
	return InjectOptions{Fraction: 0.10, Columns: 3, Seed: 42}
}

// InjectMissing nulls Fraction of the rows in Columns randomly chosen
// feature columns, independently per column. It returns the new table and
// the chosen column names in selection order. Exactly round(Fraction×Nrow)
// cells are nulled per chosen column.
func InjectMissing(df dataframe.DataFrame, features []string, opts InjectOptions) (dataframe.DataFrame, []string, error) {
	if df.Err != nil {
		return df, nil, errors.Wrap(df.Err, "InjectMissing")
	}
	if opts.Fraction < 0 || opts.Fraction >= 1 {
		return df, nil, errors.NewValueError("InjectMissing", "fraction must be in [0, 1)")
	}
	if opts.Columns < 1 || opts.Columns > len(features) {
		return df, nil, errors.NewValueError("InjectMissing",
			fmt.Sprintf("column count %d outside [1, %d]", opts.Columns, len(features)))
	}

	if opts.Fraction > 0.5 {
		errors.Warn(errors.NewDataQualityWarning("InjectMissing", "",
			fmt.Sprintf("nulling %.0f%% of rows per column leaves little signal", opts.Fraction*100)))
	}

	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	perm := r.Perm(len(features))
	chosen := make([]string, opts.Columns)
	for i := 0; i < opts.Columns; i++ {
		chosen[i] = features[perm[i]]
	}

	n := df.Nrow()
	nulls := int(math.Round(opts.Fraction * float64(n)))

	out := df.Copy()
	for _, name := range chosen {
		col := out.Col(name)
		if col.Err != nil {
			return df, nil, errors.NewValueError("InjectMissing", col.Err.Error())
		}

		values := col.Float()
		// Independent row choice per column: the nulled rows need not align
		// across columns.
		rows := r.Perm(n)
		for _, idx := range rows[:nulls] {
			values[idx] = math.NaN()
		}

		out = out.Mutate(series.New(values, series.Float, name))
		if out.Err != nil {
			return df, nil, errors.Wrap(out.Err, "InjectMissing")
		}
	}

	return out, chosen, nil
}
