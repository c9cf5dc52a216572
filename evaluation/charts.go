package evaluation

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// SaveHistogram renders a histogram of the observed (non-missing) values
// to a PNG file.
func SaveHistogram(values []float64, title, path string) error {
	observed := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}
	if len(observed) == 0 {
		return errors.NewValueError("SaveHistogram", "no observed values to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(observed, 30)
	if err != nil {
		return errors.Wrap(err, "SaveHistogram")
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "SaveHistogram")
	}
	return nil
}

// SaveRMSEChart renders a bar chart of RMSE per successful configuration
// to a PNG file.
func SaveRMSEChart(results []Result, path string) error {
	names := make([]string, 0, len(results))
	rmses := make(plotter.Values, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		names = append(names, r.Config.Name)
		rmses = append(rmses, r.RMSE)
	}
	if len(rmses) == 0 {
		return errors.NewValueError("SaveRMSEChart", "no successful results to plot")
	}

	p := plot.New()
	p.Title.Text = "RMSE per configuration"
	p.Y.Label.Text = "RMSE"

	bars, err := plotter.NewBarChart(rmses, vg.Points(30))
	if err != nil {
		return errors.Wrap(err, "SaveRMSEChart")
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = -1

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "SaveRMSEChart")
	}
	return nil
}
