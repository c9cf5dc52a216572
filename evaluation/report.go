package evaluation

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// RenderTable writes the ablation results as an aligned text table. Failed
// configurations show their error in place of the scores.
func RenderTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "CONFIGURATION\tTRAIN\tTEST\tRMSE\tR2\tSTATUS")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%v\n", r.Config.Name, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.4f\tok\n",
			r.Config.Name, r.TrainRows, r.TestRows, r.RMSE, r.R2)
	}

	return tw.Flush()
}

// WriteCSV writes the ablation results as a CSV summary with one row per
// configuration.
func WriteCSV(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return errors.NewValueError("WriteCSV", "no results to write")
	}

	names := make([]string, len(results))
	rmses := make([]float64, len(results))
	r2s := make([]float64, len(results))
	trainRows := make([]int, len(results))
	testRows := make([]int, len(results))
	status := make([]string, len(results))

	for i, r := range results {
		names[i] = r.Config.Name
		if r.Err != nil {
			rmses[i] = math.NaN()
			r2s[i] = math.NaN()
			status[i] = r.Err.Error()
			continue
		}
		rmses[i] = r.RMSE
		r2s[i] = r.R2
		trainRows[i] = r.TrainRows
		testRows[i] = r.TestRows
		status[i] = "ok"
	}

	df := dataframe.New(
		series.New(names, series.String, "configuration"),
		series.New(trainRows, series.Int, "train_rows"),
		series.New(testRows, series.Int, "test_rows"),
		series.New(rmses, series.Float, "rmse"),
		series.New(r2s, series.Float, "r2"),
		series.New(status, series.String, "status"),
	)
	if df.Err != nil {
		return errors.Wrap(df.Err, "WriteCSV")
	}

	return df.WriteCSV(w)
}
