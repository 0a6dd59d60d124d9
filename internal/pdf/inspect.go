package pdf

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docmason/mcp-pdf-editor/internal/pdf/engine"
)

// Inspector reports document metadata without mutating anything.
type Inspector struct{}

// NewInspector creates a new document inspection component
func NewInspector() *Inspector {
	return &Inspector{}
}

// Info returns page count, encryption state and per-page geometry of an
// open document, plus a lightweight text probe from an independent
// read-only parse of the raw bytes.
func (ins *Inspector) Info(doc engine.Document, raw []byte, password string) (*DocumentInfoResult, error) {
	const op = "document_info"

	if doc.IsEncrypted() && password != "" {
		if !doc.Authenticate(password) {
			return nil, invalidInput(op, ErrInvalidPassword)
		}
	}

	result := &DocumentInfoResult{
		PageCount: doc.PageCount(),
		Encrypted: doc.IsEncrypted(),
	}

	for i := 0; i < result.PageCount; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, processingFailed(op, err)
		}
		w, h := page.Size()
		result.Pages = append(result.Pages, PageInfo{
			Number:   i + 1,
			Width:    w,
			Height:   h,
			Rotation: page.Rotation(),
		})
	}

	result.HasText = probeText(raw)
	return result, nil
}

// probeText checks the first pages for extractable plain text. Failures
// degrade to false; the probe is advisory.
func probeText(raw []byte) (hasText bool) {
	defer func() {
		if recover() != nil {
			hasText = false
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return false
	}

	maxPages := reader.NumPage()
	if maxPages > 5 {
		maxPages = 5
	}

	for pageNum := 1; pageNum <= maxPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(content) != "" {
			return true
		}
	}
	return false
}
