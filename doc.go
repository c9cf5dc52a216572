// Package eda is an exploratory data analysis pipeline over two bundled
// tabular datasets: a diabetes-style regression table and an iris-style
// classification table.
//
// The pipeline loads a dataset, injects seeded synthetic missingness,
// applies configurable preprocessing ablations (row dropping, median
// imputation, log transforms, percentile outlier filtering, column drops,
// one-hot encoding) and scores each ablation with an ordinary least squares
// fit on a seeded train/test split, reporting RMSE and R².
//
// # Quick start
//
//	df, err := dataset.LoadRegression()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	injected, _, err := preprocessing.InjectMissing(
//	    df, dataset.RegressionFeatures(), preprocessing.DefaultInjectOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results := evaluation.RunAll(
//	    injected, evaluation.DefaultRegressionConfigs(), evaluation.DefaultOptions())
//	evaluation.RenderTable(os.Stdout, results)
//
// # Packages
//
//   - dataset: bundled dataset loaders with deterministic schema and content
//   - preprocessing: missingness injection, imputation, transforms, scaling
//   - stats: descriptive statistics, Shapiro-Wilk, class balance
//   - linear: ordinary least squares via the normal equations
//   - metrics: MSE, RMSE, MAE, R²
//   - evaluation: ablation configs, train/test split, scoring, reporting
//   - core/model, core/parallel: estimator plumbing and worker helpers
//   - pkg/errors, pkg/log: structured errors and JSON logging
//
// The cmd/eda command runs the whole pipeline and writes a text report, a
// CSV summary and PNG charts.
package eda
