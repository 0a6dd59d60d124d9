package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/docmason/mcp-pdf-editor/internal/pdf/engine"
)

// Service handles PDF mutation, redaction and compression by orchestrating
// the engine collaborator and the operation components. Every call is
// request-scoped: it opens its own document handle, performs exactly one
// engine pass, serializes, and releases the handle on every exit path.
type Service struct {
	engine      engine.Engine
	maxFileSize int64
	pages       *Pages
	redactor    *Redactor
	inspector   *Inspector
	compressor  *Compressor
}

// NewService creates a new PDF service with all components
func NewService(maxFileSize int64, gsBin string, gsTimeout time.Duration) *Service {
	return &Service{
		engine:      engine.NewPDFCPUEngine(),
		maxFileSize: maxFileSize,
		pages:       NewPages(),
		redactor:    NewRedactor(),
		inspector:   NewInspector(),
		compressor:  NewCompressor(gsBin, gsTimeout),
	}
}

// GetMaxFileSize returns the maximum accepted payload size
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// ValidateConfiguration checks if the service is properly configured
func (s *Service) ValidateConfiguration() error {
	if s.maxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}
	if s.maxFileSize > 1024*1024*1024 {
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}
	return nil
}

// checkSize enforces the payload ceiling before any parsing starts.
func (s *Service) checkSize(op string, data []byte) error {
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return invalidInput(op, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(data), s.maxFileSize))
	}
	return nil
}

// open acquires a request-scoped document handle.
func (s *Service) open(op string, data []byte) (engine.Document, error) {
	doc, err := s.engine.Open(data, "")
	if err != nil {
		return nil, invalidInput(op, fmt.Errorf("invalid PDF file: %w", err))
	}
	return doc, nil
}

// serialize writes the mutated handle back to bytes.
func serialize(op string, doc engine.Document) ([]byte, error) {
	out, err := doc.Serialize()
	if err != nil {
		return nil, processingFailed(op, err)
	}
	return out, nil
}

// DeletePages deletes the referenced pages from a PDF
func (s *Service) DeletePages(req DeletePagesRequest) (*DeletePagesResult, error) {
	const op = "delete_pages"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	doc, err := s.open(op, req.PDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	result, err := s.pages.Delete(doc, req.Pages, req.Password)
	if err != nil {
		return nil, err
	}
	if result.PDF, err = serialize(op, doc); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractPages keeps only the referenced pages of a PDF
func (s *Service) ExtractPages(req ExtractPagesRequest) (*ExtractPagesResult, error) {
	const op = "extract_pages"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	doc, err := s.open(op, req.PDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	result, err := s.pages.Extract(doc, req.Pages, req.Password)
	if err != nil {
		return nil, err
	}
	if result.PDF, err = serialize(op, doc); err != nil {
		return nil, err
	}
	return result, nil
}

// InsertBlankPage inserts a blank page before or after a reference page
func (s *Service) InsertBlankPage(req InsertBlankPageRequest) (*InsertBlankPageResult, error) {
	const op = "insert_blank_page"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	doc, err := s.open(op, req.PDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	result, err := s.pages.InsertBlank(doc, req)
	if err != nil {
		return nil, err
	}
	if result.PDF, err = serialize(op, doc); err != nil {
		return nil, err
	}
	return result, nil
}

// InsertPDFPages inserts pages from a source PDF into a target PDF
func (s *Service) InsertPDFPages(req InsertPDFPagesRequest) (*InsertPDFPagesResult, error) {
	const op = "insert_pdf_pages"

	if err := s.checkSize(op, req.TargetPDF); err != nil {
		return nil, err
	}
	if err := s.checkSize(op, req.SourcePDF); err != nil {
		return nil, err
	}

	doc, err := s.open(op, req.TargetPDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	src, err := s.engine.Open(req.SourcePDF, "")
	if err != nil {
		return nil, invalidInput(op, fmt.Errorf("invalid source PDF file: %w", err))
	}
	defer src.Close()

	result, err := s.pages.InsertFromSource(doc, src, req)
	if err != nil {
		return nil, err
	}
	if result.PDF, err = serialize(op, doc); err != nil {
		return nil, err
	}
	return result, nil
}

// RotatePages rotates the referenced pages by 90, 180 or 270 degrees
func (s *Service) RotatePages(req RotatePagesRequest) (*RotatePagesResult, error) {
	const op = "rotate_pages"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	doc, err := s.open(op, req.PDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	result, err := s.pages.Rotate(doc, req.Pages, req.Rotation, req.Password)
	if err != nil {
		return nil, err
	}
	if result.PDF, err = serialize(op, doc); err != nil {
		return nil, err
	}
	return result, nil
}

// Redact applies destructive content redaction plus optional replacement
// texts to a PDF
func (s *Service) Redact(req RedactRequest) (*RedactResult, error) {
	const op = "redact"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	doc, err := s.open(op, req.PDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if err := s.redactor.Apply(doc, req.Areas, req.ReplacementTexts, req.Password); err != nil {
		return nil, err
	}

	out, err := serialize(op, doc)
	if err != nil {
		return nil, err
	}
	return &RedactResult{PDF: out}, nil
}

// Compress runs the named Ghostscript preset against raw PDF bytes. It
// operates on bytes directly and never opens an engine handle.
func (s *Service) Compress(ctx context.Context, req CompressRequest) (*CompressResult, error) {
	const op = "compress"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	return s.compressor.Compress(ctx, req.PDF, req.Method, req.Rasterize)
}

// CompressionMethods lists the available compression presets
func (s *Service) CompressionMethods() []MethodInfo {
	return CompressionMethods()
}

// ServerInfo reports server capabilities and usage guidance
func (s *Service) ServerInfo(serverName, version string) (*ServerInfoResult, error) {
	return NewServerInfo(s).GetServerInfo(serverName, version)
}

// DocumentInfo reports page count, encryption state and page geometry
func (s *Service) DocumentInfo(req DocumentInfoRequest) (*DocumentInfoResult, error) {
	const op = "document_info"

	if err := s.checkSize(op, req.PDF); err != nil {
		return nil, err
	}
	doc, err := s.open(op, req.PDF)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return s.inspector.Info(doc, req.PDF, req.Password)
}
