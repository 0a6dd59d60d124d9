package pdf

import (
	"fmt"

	"github.com/docmason/mcp-pdf-editor/internal/pdf/engine"
)

// Pages performs structural page mutations against an open document.
// Validation fully precedes mutation: a rejected request leaves the
// document unchanged relative to its state on entry.
type Pages struct{}

// NewPages creates a new page mutation component
func NewPages() *Pages {
	return &Pages{}
}

// authenticate enforces the credential rule shared by delete, insert and
// rotate: a supplied password must unlock an encrypted document.
func authenticate(op string, doc engine.Document, password string) error {
	if password != "" && doc.IsEncrypted() {
		if !doc.Authenticate(password) {
			return invalidInput(op, ErrInvalidPassword)
		}
	}
	return nil
}

// Delete removes the referenced pages. References are 1-indexed;
// out-of-range values are discarded silently. Removing every page of the
// document is rejected before any page is touched.
func (p *Pages) Delete(doc engine.Document, pages []int, password string) (*DeletePagesResult, error) {
	const op = "delete_pages"

	if err := authenticate(op, doc, password); err != nil {
		return nil, err
	}

	pageCount := doc.PageCount()
	indices, err := translatePages(pages, pageCount, modeDelete)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	// Descending order keeps not-yet-processed indices stable.
	for _, idx := range indices {
		if err := doc.DeletePage(idx); err != nil {
			return nil, processingFailed(op, err)
		}
	}

	return &DeletePagesResult{
		DeletedPages:   len(indices),
		RemainingPages: pageCount - len(indices),
	}, nil
}

// Extract keeps only the referenced pages, in first-occurrence order of
// the deduplicated reference list. An encrypted document with no supplied
// password is tried against the empty credential first.
func (p *Pages) Extract(doc engine.Document, pages []int, password string) (*ExtractPagesResult, error) {
	const op = "extract_pages"

	if doc.IsEncrypted() {
		if password != "" {
			if !doc.Authenticate(password) {
				return nil, invalidInput(op, ErrInvalidPassword)
			}
		} else if !doc.Authenticate("") {
			return nil, invalidInput(op, ErrPasswordRequired)
		}
	}

	pageCount := doc.PageCount()
	keep, err := translatePages(pages, pageCount, modeExtract)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	for _, idx := range complementDescending(keep, pageCount) {
		if err := doc.DeletePage(idx); err != nil {
			return nil, processingFailed(op, err)
		}
	}

	return &ExtractPagesResult{
		ExtractedPages: len(keep),
		OriginalPages:  pageCount,
	}, nil
}

// InsertBlank inserts an empty page before or after the reference page.
// Unspecified dimensions default to the reference page's extent.
func (p *Pages) InsertBlank(doc engine.Document, req InsertBlankPageRequest) (*InsertBlankPageResult, error) {
	const op = "insert_blank_page"

	if err := authenticate(op, doc, req.Password); err != nil {
		return nil, err
	}

	pageCount := doc.PageCount()
	refIdx, err := referenceIndex(req.ReferencePage, pageCount)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	insertIdx, err := insertPosition(req.Position, refIdx)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	width, height := req.Width, req.Height
	if width <= 0 || height <= 0 {
		refPage, err := doc.Page(refIdx)
		if err != nil {
			return nil, processingFailed(op, err)
		}
		w, h := refPage.Size()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}

	if err := doc.NewPage(insertIdx, width, height); err != nil {
		return nil, processingFailed(op, err)
	}

	return &InsertBlankPageResult{
		NewPageCount: pageCount + 1,
		InsertedAt:   insertIdx + 1,
	}, nil
}

// InsertFromSource inserts pages from a source document before or after
// the reference page of the target. The selection is always treated as
// the contiguous span between the smallest and largest requested source
// index; callers requesting a sparse set receive the enclosing range.
func (p *Pages) InsertFromSource(doc, src engine.Document, req InsertPDFPagesRequest) (*InsertPDFPagesResult, error) {
	const op = "insert_pdf_pages"

	if err := authenticate(op, doc, req.TargetPassword); err != nil {
		return nil, err
	}
	if req.SourcePassword != "" && src.IsEncrypted() {
		if !src.Authenticate(req.SourcePassword) {
			return nil, invalidInput(op, fmt.Errorf("source PDF: %w", ErrInvalidPassword))
		}
	}

	targetCount := doc.PageCount()
	sourceCount := src.PageCount()

	refIdx, err := referenceIndex(req.ReferencePage, targetCount)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	insertIdx, err := insertPosition(req.Position, refIdx)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	var selected []int
	if len(req.PagesToInsert) > 0 {
		selected, err = translatePages(req.PagesToInsert, sourceCount, modeRotate)
		if err != nil {
			return nil, invalidInput(op, fmt.Errorf("source PDF: %w", err))
		}
	} else {
		if sourceCount == 0 {
			return nil, invalidInput(op, fmt.Errorf("source PDF: %w", ErrNoValidPages))
		}
		selected = make([]int, sourceCount)
		for i := range selected {
			selected[i] = i
		}
	}

	from, to := selected[0], selected[0]
	for _, idx := range selected[1:] {
		if idx < from {
			from = idx
		}
		if idx > to {
			to = idx
		}
	}

	if err := doc.InsertRange(src, from, to, insertIdx); err != nil {
		return nil, processingFailed(op, err)
	}

	return &InsertPDFPagesResult{
		NewPageCount:  targetCount + len(selected),
		InsertedPages: len(selected),
	}, nil
}

// Rotate adds the requested delta to each referenced page's stored
// rotation, normalized into [0, 360).
func (p *Pages) Rotate(doc engine.Document, pages []int, rotation int, password string) (*RotatePagesResult, error) {
	const op = "rotate_pages"

	if rotation != 90 && rotation != 180 && rotation != 270 {
		return nil, invalidInput(op, fmt.Errorf("%w: got %d", ErrInvalidRotation, rotation))
	}

	if err := authenticate(op, doc, password); err != nil {
		return nil, err
	}

	indices, err := translatePages(pages, doc.PageCount(), modeRotate)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	for _, idx := range indices {
		page, err := doc.Page(idx)
		if err != nil {
			return nil, processingFailed(op, err)
		}
		if err := doc.SetRotation(idx, (page.Rotation()+rotation)%360); err != nil {
			return nil, processingFailed(op, err)
		}
	}

	return &RotatePagesResult{
		RotatedPages: len(indices),
		Rotation:     rotation,
	}, nil
}

// insertPosition maps a position keyword and a validated 0-indexed
// reference to the insertion index. An empty position means "after".
func insertPosition(position string, refIdx int) (int, error) {
	switch position {
	case "before":
		return refIdx, nil
	case "after", "":
		return refIdx + 1, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPosition, position)
	}
}
