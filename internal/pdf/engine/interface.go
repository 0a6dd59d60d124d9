package engine

import (
	"fmt"
)

// Engine opens raw PDF bytes into a mutable Document. Implementations own
// no state beyond construction parameters; every Open call yields an
// independent document instance scoped to a single request.
type Engine interface {
	Open(data []byte, password string) (Document, error)
}

// Document is an open, mutable, ordered page collection. A Document is
// owned exclusively by the request that opened it and must be closed at
// the end of the request on every path.
type Document interface {
	// PageCount returns the current number of pages.
	PageCount() int

	// Page returns the page at the given 0-indexed position.
	Page(i int) (Page, error)

	// DeletePage removes the page at the given 0-indexed position.
	DeletePage(i int) error

	// NewPage inserts a blank page of the given dimensions (points) at the
	// given 0-indexed position. Position PageCount() appends.
	NewPage(at int, width, height float64) error

	// InsertRange inserts the contiguous 0-indexed page span [from, to] of
	// src at the given 0-indexed position of this document.
	InsertRange(src Document, from, to, at int) error

	// SetRotation stores an absolute rotation angle in [0, 360) for the
	// page at the given 0-indexed position.
	SetRotation(i int, rotation int) error

	// AddRedactionArea queues a redaction annotation on the given
	// 0-indexed page. Queued areas take effect on CommitRedactions.
	AddRedactionArea(page int, area Rect, fill Color) error

	// CommitRedactions applies all queued redaction areas of the given
	// page, permanently removing intersecting content and painting the
	// fill. Irreversible.
	CommitRedactions(page int) error

	// InsertText draws a literal text string at the given point of the
	// given 0-indexed page.
	InsertText(page int, at Point, text string, size float64, color Color) error

	// IsEncrypted reports whether the document carries encryption.
	IsEncrypted() bool

	// Authenticate validates a credential against an encrypted document.
	// Returns true when subsequent operations are permitted.
	Authenticate(password string) bool

	// Serialize writes the current document state back to bytes,
	// garbage-collecting unreferenced objects and recompressing streams.
	Serialize() ([]byte, error)

	// Close releases all resources held by the document. Safe to call on
	// every exit path; only the first call has an effect.
	Close() error
}

// Page is a single page of an open Document, addressed by its current
// position in the page collection.
type Page interface {
	// Size returns the page extent in points.
	Size() (width, height float64)

	// Rotation returns the stored absolute rotation angle, one of
	// 0, 90, 180 or 270.
	Rotation() int
}

// Point is a coordinate in page space (points, origin top-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a rectangular area in page space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Color is a fractional RGB color, each channel in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// White and Black are the engine-wide fill and text defaults.
var (
	White = Color{R: 1, G: 1, B: 1}
	Black = Color{R: 0, G: 0, B: 0}
)

// EngineError wraps a failure of the underlying PDF backend with the
// operation that triggered it.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("pdf engine: %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Common error variables
var (
	ErrDocumentClosed  = fmt.Errorf("document is closed")
	ErrInvalidPage     = fmt.Errorf("invalid page number")
	ErrInvalidDocument = fmt.Errorf("invalid PDF document")
	ErrNotAuthed       = fmt.Errorf("encrypted document requires authentication")
)
