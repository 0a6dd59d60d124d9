package pdf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(docs ...*fakeDoc) *Service {
	s := NewService(10*1024*1024, "gs", time.Minute)
	s.engine = &fakeEngine{docs: docs}
	return s
}

func TestNewService(t *testing.T) {
	s := NewService(1024*1024, "gs", time.Minute)
	require.NotNil(t, s)
	assert.Equal(t, int64(1024*1024), s.GetMaxFileSize())
	assert.NotNil(t, s.engine)
	assert.NotNil(t, s.pages)
	assert.NotNil(t, s.redactor)
	assert.NotNil(t, s.inspector)
	assert.NotNil(t, s.compressor)
}

func TestService_ValidateConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		maxFileSize int64
		wantErr     bool
	}{
		{"valid configuration", 1024 * 1024, false},
		{"zero max file size", 0, true},
		{"negative max file size", -1, true},
		{"max file size too large", 2 * 1024 * 1024 * 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.maxFileSize, "gs", time.Minute)
			err := s.ValidateConfiguration()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_DeletePages(t *testing.T) {
	doc := newFakeDoc(4)
	s := newTestService(doc)

	result, err := s.DeletePages(DeletePagesRequest{PDF: []byte("%PDF-fake"), Pages: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.DeletedPages)
	assert.Equal(t, 3, result.RemainingPages)
	assert.NotEmpty(t, result.PDF)
	assert.True(t, doc.closed, "handle must be released after the request")
}

func TestService_HandleClosedOnFailure(t *testing.T) {
	doc := newFakeDoc(2)
	s := newTestService(doc)

	_, err := s.DeletePages(DeletePagesRequest{PDF: []byte("%PDF-fake"), Pages: []int{1, 2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWouldEmptyDocument))
	assert.True(t, doc.closed, "handle must be released on failure paths too")
}

func TestService_PayloadSizeLimit(t *testing.T) {
	s := newTestService()
	s.maxFileSize = 8

	_, err := s.DeletePages(DeletePagesRequest{PDF: make([]byte, 9), Pages: []int{1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
	assert.Equal(t, KindInvalidInput, Kind(err))

	_, err = s.Compress(context.Background(), CompressRequest{PDF: make([]byte, 9), Method: "gs-screen"})
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

func TestService_OpenFailure(t *testing.T) {
	s := NewService(1024, "gs", time.Minute)
	s.engine = &fakeEngine{err: errors.New("not a pdf")}

	_, err := s.DeletePages(DeletePagesRequest{PDF: []byte("junk"), Pages: []int{1}})
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, Kind(err))
}

func TestService_InsertPDFPages(t *testing.T) {
	target := newFakeDoc(2)
	source := newFakeDoc(3)
	s := newTestService(target, source)

	result, err := s.InsertPDFPages(InsertPDFPagesRequest{
		TargetPDF:     []byte("%PDF-fake target"),
		SourcePDF:     []byte("%PDF-fake source"),
		Position:      "after",
		ReferencePage: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.InsertedPages)
	assert.Equal(t, 5, result.NewPageCount)
	assert.True(t, target.closed)
	assert.True(t, source.closed)
}

func TestService_Redact(t *testing.T) {
	doc := newFakeDoc(2)
	s := newTestService(doc)

	result, err := s.Redact(RedactRequest{
		PDF:   []byte("%PDF-fake"),
		Areas: []RedactionArea{{Page: 1, X: 0, Y: 0, Width: 10, Height: 10}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.PDF)
	assert.Len(t, doc.pages[0].redacted, 1)
	assert.True(t, doc.closed)
}

func TestService_CompressionMethods(t *testing.T) {
	s := newTestService()
	assert.Len(t, s.CompressionMethods(), 4)
}
