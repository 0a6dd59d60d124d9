package pdf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionStats(t *testing.T) {
	tests := []struct {
		name         string
		original     int64
		compressed   int64
		wantRatio    float64
		wantSaved    int64
	}{
		{"typical reduction", 1000, 400, 60.00, 600},
		{"zero original", 0, 0, 0, 0},
		{"no change", 500, 500, 0, 0},
		{"inflated output reports a negative ratio", 1000, 1500, -50.00, -500},
		{"two decimal rounding", 3, 1, 66.67, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := compressionStats(tt.original, tt.compressed)
			assert.Equal(t, tt.original, stats.OriginalSize)
			assert.Equal(t, tt.compressed, stats.CompressedSize)
			assert.InDelta(t, tt.wantRatio, stats.CompressionRatio, 0.0001)
			assert.Equal(t, tt.wantSaved, stats.SavedBytes)
		})
	}
}

func TestGhostscriptArgs(t *testing.T) {
	ebook := compressionMethods["gs-ebook"]
	minimum := compressionMethods["gs-minimum"]

	t.Run("structural recompression", func(t *testing.T) {
		args := ghostscriptArgs(ebook, "gs-ebook", false, "/tmp/in.pdf", "/tmp/out.pdf")
		assert.Contains(t, args, "-sDEVICE=pdfwrite")
		assert.Contains(t, args, "-dPDFSETTINGS=/ebook")
		assert.Contains(t, args, "-dColorImageDownsampleType=/Bicubic")
		assert.NotContains(t, args, "-dDownsampleColorImages=true")
		assert.Equal(t, "/tmp/in.pdf", args[len(args)-1])
		assert.Equal(t, "-sOutputFile=/tmp/out.pdf", args[len(args)-2])
	})

	t.Run("minimum preset forces explicit downsample thresholds", func(t *testing.T) {
		args := ghostscriptArgs(minimum, "gs-minimum", false, "/tmp/in.pdf", "/tmp/out.pdf")
		assert.Contains(t, args, "-dColorImageResolution=36")
		assert.Contains(t, args, "-dGrayImageResolution=36")
		assert.Contains(t, args, "-dMonoImageResolution=36")
		assert.Contains(t, args, "-dDownsampleColorImages=true")
	})

	t.Run("rasterize flattens pages to images", func(t *testing.T) {
		args := ghostscriptArgs(ebook, "gs-ebook", true, "/tmp/in.pdf", "/tmp/out.pdf")
		assert.Contains(t, args, "-sDEVICE=pdfimage24")
		assert.Contains(t, args, "-r150")
		assert.NotContains(t, args, "-sDEVICE=pdfwrite")
	})
}

func TestCompressionMethods(t *testing.T) {
	infos := CompressionMethods()
	require.Len(t, infos, 4)

	assert.Equal(t, "gs-minimum", infos[0].Method)
	assert.Equal(t, 36, infos[0].DPI)
	assert.Equal(t, "gs-screen", infos[1].Method)
	assert.Equal(t, "gs-ebook", infos[2].Method)
	assert.Equal(t, "gs-printer", infos[3].Method)
	assert.Equal(t, 300, infos[3].DPI)

	// Listing twice yields the same stable order.
	assert.Equal(t, infos, CompressionMethods())
}

func TestCompressor_InvalidMethod(t *testing.T) {
	c := NewCompressor("gs", time.Minute)
	_, err := c.Compress(context.Background(), []byte("%PDF-1.4"), "gs-bogus", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMethod))
	assert.Equal(t, KindInvalidInput, Kind(err))
}

func TestCompressor_ToolUnavailable(t *testing.T) {
	c := NewCompressor("definitely-not-a-real-binary-name", time.Minute)
	_, err := c.Compress(context.Background(), []byte("%PDF-1.4"), "gs-screen", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolUnavailable))
	assert.Equal(t, KindProcessingFailed, Kind(err))
}

func TestNewCompressor_Defaults(t *testing.T) {
	c := NewCompressor("", 0)
	assert.Equal(t, "gs", c.bin)
	assert.Equal(t, 5*time.Minute, c.timeout)
}
