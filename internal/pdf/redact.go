package pdf

import (
	"github.com/docmason/mcp-pdf-editor/internal/pdf/engine"
)

const (
	defaultFontSize = 12.0
)

// Redactor applies destructive, irreversible content redaction to an open
// document.
type Redactor struct{}

// NewRedactor creates a new redaction component
func NewRedactor() *Redactor {
	return &Redactor{}
}

// Apply groups the requested areas by page, commits every redaction pass,
// and only then draws the replacement texts. Committing everything first
// guarantees a replacement text is never erased by a later redaction pass
// on its own page. Areas and texts referencing pages outside the current
// page count are skipped silently, which permits batch requests spanning
// documents of varying length.
func (r *Redactor) Apply(doc engine.Document, areas []RedactionArea, texts []ReplacementText, password string) error {
	const op = "redact"

	if err := authenticate(op, doc, password); err != nil {
		return err
	}

	pageCount := doc.PageCount()
	if pageCount == 0 {
		return invalidInput(op, ErrEmptyDocument)
	}

	byPage := map[int][]RedactionArea{}
	for _, a := range areas {
		idx := a.Page - 1
		if idx < 0 || idx >= pageCount {
			continue
		}
		byPage[idx] = append(byPage[idx], a)
	}

	for idx, pageAreas := range byPage {
		for _, a := range pageAreas {
			rect := engine.Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
			if err := doc.AddRedactionArea(idx, rect, a.Fill.Resolve()); err != nil {
				return processingFailed(op, err)
			}
		}
		if err := doc.CommitRedactions(idx); err != nil {
			return processingFailed(op, err)
		}
	}

	for _, t := range texts {
		idx := t.Page - 1
		if idx < 0 || idx >= pageCount {
			continue
		}

		size := t.FontSize
		if size <= 0 {
			size = defaultFontSize
		}

		// Shift the anchor down by the font size to approximate the
		// text baseline.
		at := engine.Point{X: t.X, Y: t.Y + size}
		color := t.Color.ResolveOr(engine.Black)

		if err := doc.InsertText(idx, at, t.Text, size, color); err != nil {
			return processingFailed(op, err)
		}
	}

	return nil
}
