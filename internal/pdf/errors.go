package pdf

import (
	"errors"
	"fmt"
)

// ErrorKind classifies operation failures for the boundary layer.
type ErrorKind int

const (
	// KindInvalidInput marks failures detectable before any mutation:
	// malformed caller data, out-of-range references, unsupported enum
	// values, credential mismatches, empty validated selections.
	KindInvalidInput ErrorKind = iota

	// KindProcessingFailed marks collaborator-level failures: the engine
	// cannot open or serialize a document, the external tool is missing,
	// exits non-zero, or times out.
	KindProcessingFailed
)

// String returns the wire code for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "INVALID_INPUT"
	case KindProcessingFailed:
		return "PROCESSING_FAILED"
	default:
		return "UNKNOWN"
	}
}

// OpError is the structured error returned by every public operation.
type OpError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// invalidInput wraps a validation failure.
func invalidInput(op string, err error) *OpError {
	return &OpError{Kind: KindInvalidInput, Op: op, Err: err}
}

// processingFailed wraps a collaborator failure.
func processingFailed(op string, err error) *OpError {
	return &OpError{Kind: KindProcessingFailed, Op: op, Err: err}
}

// Sentinel causes, exposed for errors.Is.
var (
	ErrNoValidPages       = errors.New("no valid pages in selection")
	ErrWouldEmptyDocument = errors.New("operation would remove all pages")
	ErrInvalidReference   = errors.New("invalid reference page")
	ErrInvalidRotation    = errors.New("rotation must be 90, 180 or 270")
	ErrInvalidPassword    = errors.New("invalid password for encrypted PDF")
	ErrPasswordRequired   = errors.New("PDF is encrypted and requires a password")
	ErrEmptyDocument      = errors.New("PDF has no pages")
	ErrInvalidMethod      = errors.New("invalid compression method")
	ErrToolUnavailable    = errors.New("ghostscript is not installed")
	ErrFileTooLarge       = errors.New("PDF exceeds the maximum file size")
	ErrInvalidPosition    = errors.New("position must be \"before\" or \"after\"")
)

// Kind extracts the error kind from an operation error chain. Anything
// that is not an OpError counts as a processing failure.
func Kind(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindProcessingFailed
}
