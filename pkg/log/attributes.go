// Standard attribute keys used across the pipeline's log records. Keeping
// the keys in one place makes the JSON output greppable per dataset, column
// and configuration.

package log

// Pipeline context.
const (
	// DatasetKey identifies the dataset being processed ("regression",
	// "classification").
	DatasetKey = "dataset.name"

	// ConfigKey identifies the preprocessing configuration (ablation) in play.
	ConfigKey = "eda.config"

	// StageKey indicates the pipeline stage.
	// Values: "load", "inject", "preprocess", "diagnostics", "evaluate", "report".
	StageKey = "eda.stage"

	// ColumnKey names the column an operation or failure refers to.
	ColumnKey = "data.column"

	// SeedKey records the random seed governing a stochastic step.
	SeedKey = "eda.seed"
)

// Data shape.
const (
	// RowsKey is the number of rows in the table at hand.
	RowsKey = "data.rows"

	// ColsKey is the number of columns in the table at hand.
	ColsKey = "data.cols"

	// MissingKey is the number of missing cells in the table at hand.
	MissingKey = "data.missing"
)

// Results.
const (
	// RMSEKey is the root-mean-squared-error of an evaluated configuration.
	RMSEKey = "result.rmse"

	// R2Key is the coefficient of determination of an evaluated configuration.
	R2Key = "result.r2"

	// DurationMsKey is the wall-clock duration of a stage in milliseconds.
	DurationMsKey = "duration_ms"
)
