// Package errors provides structured error handling and the warning system
// for the EDA pipeline. The error taxonomy mirrors the failure modes of the
// pipeline stages: dataset loading, preprocessing transforms, diagnostics
// and model evaluation.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("eda-warning: %v\n", w)
	}
	// zerolog sink, injected lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the process-wide warning handler. Warnings are
// advisory data-quality signals, not failures; a handler may ignore them.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// falling back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// DataQualityWarning signals that a preprocessing step behaved legally but
// suspiciously, e.g. an outlier filter discarding a large share of rows.
type DataQualityWarning struct {
	Op     string
	Column string
	Detail string
}

func (w *DataQualityWarning) Error() string {
	if w.Column != "" {
		return fmt.Sprintf("%s: column %q: %s", w.Op, w.Column, w.Detail)
	}
	return fmt.Sprintf("%s: %s", w.Op, w.Detail)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DataQualityWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Str("column", w.Column).
		Str("detail", w.Detail).
		Str("type", "DataQualityWarning")
}

// NewDataQualityWarning creates a new DataQualityWarning.
func NewDataQualityWarning(op, column, detail string) *DataQualityWarning {
	return &DataQualityWarning{Op: op, Column: column, Detail: detail}
}

// ===========================================================================
//
//	Pipeline error types
//
// ===========================================================================

// DatasetUnavailableError reports that a named dataset could not be provided
// by the bundled dataset source.
type DatasetUnavailableError struct {
	Name   string
	Reason string
}

func (e *DatasetUnavailableError) Error() string {
	return fmt.Sprintf("eda: dataset %q unavailable: %s", e.Name, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DatasetUnavailableError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("dataset", e.Name).
		Str("reason", e.Reason).
		Str("type", "DatasetUnavailableError")
}

// NewDatasetUnavailableError creates a DatasetUnavailableError with a stack trace.
func NewDatasetUnavailableError(name, reason string) error {
	err := &DatasetUnavailableError{Name: name, Reason: reason}
	return errors.WithStack(err)
}

// DomainError reports a transform precondition violation, e.g. taking the
// log of a non-positive value. Row is the zero-based row index of the
// offending cell, or -1 when not row-specific.
type DomainError struct {
	Op     string
	Column string
	Row    int
	Value  float64
}

func (e *DomainError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("eda: %s: column %q row %d: value %v outside the valid domain", e.Op, e.Column, e.Row, e.Value)
	}
	return fmt.Sprintf("eda: %s: column %q: value %v outside the valid domain", e.Op, e.Column, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Int("row", e.Row).
		Float64("value", e.Value).
		Str("type", "DomainError")
}

// NewDomainError creates a DomainError with a stack trace.
func NewDomainError(op, column string, row int, value float64) error {
	err := &DomainError{Op: op, Column: column, Row: row, Value: value}
	return errors.WithStack(err)
}

// DiagnosticError reports that a statistic is undefined for the given input,
// e.g. the median of an entirely missing column.
type DiagnosticError struct {
	Stat   string
	Column string
	Reason string
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("eda: %s undefined for column %q: %s", e.Stat, e.Column, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DiagnosticError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("statistic", e.Stat).
		Str("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "DiagnosticError")
}

// NewDiagnosticError creates a DiagnosticError with a stack trace.
func NewDiagnosticError(stat, column, reason string) error {
	err := &DiagnosticError{Stat: stat, Column: column, Reason: reason}
	return errors.WithStack(err)
}

// ShapeError reports that a table is not in the shape the model evaluator
// requires: empty after cleaning, or carrying non-numeric predictors.
type ShapeError struct {
	Op     string
	Column string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("eda: %s: column %q: %s", e.Op, e.Column, e.Reason)
	}
	return fmt.Sprintf("eda: %s: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "ShapeError")
}

// NewShapeError creates a ShapeError with a stack trace.
func NewShapeError(op, column, reason string) error {
	err := &ShapeError{Op: op, Column: column, Reason: reason}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Model plumbing error types
//
// ===========================================================================

// NotFittedError is returned when Predict or Transform is called on an
// estimator whose Fit has not completed.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("eda: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports a mismatch between the expected and actual size of
// an input along one axis. Axis 0 is rows, axis 1 is columns.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("eda: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("eda: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general model failure wrapping an underlying cause.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("eda: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("eda: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when the normal equations cannot be solved.
	ErrSingularMatrix = New("singular matrix")
)
