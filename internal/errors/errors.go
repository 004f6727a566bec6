package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrNoValidData     = errors.New("no valid data")
	ErrStorage         = errors.New("storage failure")
	ErrNotInitialized  = errors.New("not initialized")
)

// Fixed user-facing messages for the two alert paths of the plot tool.
const (
	MsgInvalidFileType = "Please drop a CSV file."
	MsgNoValidData     = "No valid Centroid X/Y data found."
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "plot", "saved color", "settings"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidFileTypeError is returned when an uploaded file is not a CSV.
type InvalidFileTypeError struct {
	Name string
}

func (e *InvalidFileTypeError) Error() string {
	return MsgInvalidFileType
}

func (e *InvalidFileTypeError) Unwrap() error {
	return ErrInvalidFileType
}

// NoValidDataError is returned when a CSV yields no usable X/Y rows.
type NoValidDataError struct {
	Rows int // data lines examined
}

func (e *NoValidDataError) Error() string {
	return MsgNoValidData
}

func (e *NoValidDataError) Unwrap() error {
	return ErrNoValidData
}

// StorageError indicates persisted data could not be read or written.
type StorageError struct {
	Key  string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage key %q (%s): %v", e.Key, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// NotInitializedError indicates no data directory could be resolved.
type NotInitializedError struct {
	Path string
}

func (e *NotInitializedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jitterkit not initialized in %s (run 'jitterkit init')", e.Path)
	}
	return "jitterkit not initialized (run 'jitterkit init')"
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

// Helper constructors for common cases

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IndexOutOfRange(index, length int) error {
	return &ValidationError{
		Field:   "index",
		Message: fmt.Sprintf("%d is out of range (have %d saved colors)", index, length),
	}
}

func PlotNotFound() error {
	return &NotFoundError{Resource: "plot"}
}

func InvalidFileType(name string) error {
	return &InvalidFileTypeError{Name: name}
}

func NoValidData(rows int) error {
	return &NoValidDataError{Rows: rows}
}

func CorruptStorage(key, path string, err error) error {
	return &StorageError{Key: key, Path: path, Err: err}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidFileType checks if an error is a rejected upload.
func IsInvalidFileType(err error) bool {
	return errors.Is(err, ErrInvalidFileType)
}

// IsNoValidData checks if an error is an empty-ingestion error.
func IsNoValidData(err error) bool {
	return errors.Is(err, ErrNoValidData)
}

// IsStorageError checks if an error came from persisted storage.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
