package evaluation

import (
	"log/slog"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/dataset"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/linear"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/metrics"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/log"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/preprocessing"
)

// Options controls how a configuration is scored.
type Options struct {
	// Target is the column predicted by the model.
	Target string

	// TestFraction is the share of rows held out for scoring.
	TestFraction float64

	// Seed drives the train/test shuffle.
	Seed uint64
}

// DefaultOptions returns the options used for the regression ablations.
func DefaultOptions() Options {
	return Options{
		Target:       dataset.RegressionTarget,
		TestFraction: 0.25,
		Seed:         42,
	}
}

// Result is the outcome of scoring one configuration. Err is set by RunAll
// when the configuration failed; the numeric fields are then meaningless.
type Result struct {
	Config    Config
	RMSE      float64
	R2        float64
	TrainRows int
	TestRows  int
	Err       error
}

// Evaluate applies the configuration's preprocessing to a copy of df, fits
// an ordinary least squares model on a seeded training partition and
// returns RMSE and R² on the held-out partition.
//
// The cleaned table must be fully numeric with no missing cells; anything
// else is a ShapeError naming the offending column.
func Evaluate(df dataframe.DataFrame, cfg Config, opts Options) (Result, error) {
	result := Result{Config: cfg}

	if opts.Target == "" {
		return result, errors.NewValueError("Evaluate", "no target column named")
	}

	cleaned, err := Apply(df, cfg)
	if err != nil {
		return result, err
	}

	X, y, err := designMatrix(cleaned, opts.Target)
	if err != nil {
		return result, err
	}

	n, _ := X.Dims()
	trainIdx, testIdx, err := TrainTestSplit(n, opts.TestFraction, opts.Seed)
	if err != nil {
		return result, err
	}
	result.TrainRows = len(trainIdx)
	result.TestRows = len(testIdx)

	XTrain, yTrain := takeRows(X, y, trainIdx)
	XTest, yTest := takeRows(X, y, testIdx)

	var trainFeatures, testFeatures mat.Matrix = XTrain, XTest
	if cfg.Standardize {
		scaler := preprocessing.NewStandardScaler()
		if trainFeatures, err = scaler.FitTransform(XTrain); err != nil {
			return result, err
		}
		if testFeatures, err = scaler.Transform(XTest); err != nil {
			return result, err
		}
	}

	ols := linear.NewLinearRegression()
	if err := ols.Fit(trainFeatures, yTrain); err != nil {
		return result, err
	}

	predictions, err := ols.Predict(testFeatures)
	if err != nil {
		return result, err
	}

	if result.RMSE, err = metrics.RMSEMatrix(yTest, predictions); err != nil {
		return result, err
	}
	if result.R2, err = ols.Score(testFeatures, yTest); err != nil {
		return result, err
	}

	return result, nil
}

// RunAll scores every configuration against its own copy of df. A panic or
// error inside one configuration is captured into that configuration's
// Result and logged; the remaining configurations run regardless. Results
// come back in configuration order.
func RunAll(df dataframe.DataFrame, configs []Config, opts Options) []Result {
	results := make([]Result, 0, len(configs))

	for _, cfg := range configs {
		started := time.Now()

		var result Result
		err := errors.SafeExecute(cfg.Name, func() error {
			var evalErr error
			result, evalErr = Evaluate(df, cfg, opts)
			return evalErr
		})
		if err != nil {
			result = Result{Config: cfg, Err: err}
			slog.Warn("configuration failed",
				slog.String(log.ConfigKey, cfg.Name),
				slog.String(log.StageKey, "evaluate"),
				log.ErrAttr(err),
			)
		} else {
			slog.Info("configuration evaluated",
				slog.String(log.ConfigKey, cfg.Name),
				slog.String(log.StageKey, "evaluate"),
				slog.Float64(log.RMSEKey, result.RMSE),
				slog.Float64(log.R2Key, result.R2),
				slog.Int64(log.DurationMsKey, time.Since(started).Milliseconds()),
			)
		}

		results = append(results, result)
	}

	return results
}

// designMatrix splits the table into an n×p feature matrix and an n×1
// target vector. Every column must be numeric and fully observed.
func designMatrix(df dataframe.DataFrame, target string) (*mat.Dense, *mat.Dense, error) {
	const op = "Evaluate"

	if df.Err != nil {
		return nil, nil, errors.Wrap(df.Err, op)
	}

	names := df.Names()
	features := make([]string, 0, len(names))
	hasTarget := false
	for _, name := range names {
		if name == target {
			hasTarget = true
			continue
		}
		features = append(features, name)
	}
	if !hasTarget {
		return nil, nil, errors.NewShapeError(op, target, "target column not in table")
	}
	if len(features) == 0 {
		return nil, nil, errors.NewShapeError(op, "", "no predictor columns")
	}

	n := df.Nrow()
	if n == 0 {
		return nil, nil, errors.NewShapeError(op, "", "empty table after preprocessing")
	}

	X := mat.NewDense(n, len(features), nil)
	for j, name := range features {
		col := df.Col(name)
		if col.Type() != series.Float {
			return nil, nil, errors.NewShapeError(op, name, "non-numeric predictor column")
		}
		values := col.Float()
		if err := errors.CheckFinite(op, name, values); err != nil {
			return nil, nil, err
		}
		for i, v := range values {
			X.Set(i, j, v)
		}
	}

	targetCol := df.Col(target)
	if targetCol.Type() != series.Float {
		return nil, nil, errors.NewShapeError(op, target, "non-numeric target column")
	}
	targetValues := targetCol.Float()
	if err := errors.CheckFinite(op, target, targetValues); err != nil {
		return nil, nil, err
	}
	y := mat.NewDense(n, 1, nil)
	for i, v := range targetValues {
		y.Set(i, 0, v)
	}

	return X, y, nil
}

// takeRows gathers the given rows of X and y into fresh matrices.
func takeRows(X, y *mat.Dense, rows []int) (*mat.Dense, *mat.Dense) {
	_, p := X.Dims()
	outX := mat.NewDense(len(rows), p, nil)
	outY := mat.NewDense(len(rows), 1, nil)
	for i, row := range rows {
		for j := 0; j < p; j++ {
			outX.Set(i, j, X.At(row, j))
		}
		outY.Set(i, 0, y.At(row, 0))
	}
	return outX, outY
}
