package errors

import (
	"strings"
	"testing"
)

func TestPipelineErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "dataset unavailable",
			err:  NewDatasetUnavailableError("regression", "unknown dataset name"),
			want: []string{"regression", "unavailable", "unknown dataset name"},
		},
		{
			name: "domain error with row",
			err:  NewDomainError("log_transform", "s4", 17, -0.5),
			want: []string{"log_transform", "s4", "row 17", "-0.5"},
		},
		{
			name: "domain error without row",
			err:  NewDomainError("log_transform", "s4", -1, 0),
			want: []string{"log_transform", "s4", "valid domain"},
		},
		{
			name: "diagnostic error",
			err:  NewDiagnosticError("median", "bmi", "column has no observed values"),
			want: []string{"median", "bmi", "no observed values"},
		},
		{
			name: "shape error with column",
			err:  NewShapeError("Evaluate", "species", "non-numeric predictor"),
			want: []string{"Evaluate", "species", "non-numeric"},
		},
		{
			name: "shape error without column",
			err:  NewShapeError("Evaluate", "", "empty table after cleaning"),
			want: []string{"Evaluate", "empty table"},
		},
		{
			name: "not fitted",
			err:  NewNotFittedError("LinearRegression", "Predict"),
			want: []string{"LinearRegression", "not fitted", "Predict"},
		},
		{
			name: "dimension mismatch on rows",
			err:  NewDimensionError("Fit", 100, 90, 0),
			want: []string{"Fit", "rows", "100", "90"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("error message %q does not contain %q", msg, want)
				}
			}
		})
	}
}

func TestErrorTypeMatching(t *testing.T) {
	err := Wrap(NewDomainError("log_transform", "s4", 3, -2), "config log-s4 failed")

	var domainErr *DomainError
	if !As(err, &domainErr) {
		t.Fatalf("As() failed to find DomainError in %v", err)
	}
	if domainErr.Column != "s4" || domainErr.Row != 3 {
		t.Errorf("DomainError fields = (%q, %d), want (\"s4\", 3)", domainErr.Column, domainErr.Row)
	}

	var shapeErr *ShapeError
	if As(err, &shapeErr) {
		t.Errorf("As() matched ShapeError on a DomainError chain")
	}
}

func TestSentinelErrors(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "Fit")
	if !Is(wrapped, ErrEmptyData) {
		t.Errorf("Is() = false for wrapped ErrEmptyData")
	}
	if Is(wrapped, ErrSingularMatrix) {
		t.Errorf("Is() = true for unrelated sentinel")
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewDataQualityWarning("filter_percentile", "s4", "removed 42% of rows")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "s4") {
		t.Errorf("captured warning %q missing column context", captured.Error())
	}
}

func TestWarnZerologSinkTakesPriority(t *testing.T) {
	var viaHandler, viaSink bool
	SetWarningHandler(func(w error) { viaHandler = true })
	SetZerologWarnFunc(func(w error) { viaSink = true })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(NewDataQualityWarning("inject", "", "fraction above 0.5"))

	if !viaSink {
		t.Error("zerolog sink was not invoked")
	}
	if viaHandler {
		t.Error("fallback handler invoked despite zerolog sink")
	}
}

func TestCheckFinite(t *testing.T) {
	if err := CheckFinite("Evaluate", "bmi", []float64{1, 2, 3}); err != nil {
		t.Errorf("CheckFinite() = %v on finite input", err)
	}

	err := CheckFinite("Evaluate", "bmi", []float64{1, nan(), 3})
	if err == nil {
		t.Fatal("CheckFinite() = nil on NaN input")
	}
	var shapeErr *ShapeError
	if !As(err, &shapeErr) {
		t.Fatalf("CheckFinite() error is not a ShapeError: %v", err)
	}
	if shapeErr.Column != "bmi" {
		t.Errorf("ShapeError.Column = %q, want %q", shapeErr.Column, "bmi")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
