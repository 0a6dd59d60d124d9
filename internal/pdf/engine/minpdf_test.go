package engine

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlankPagePDF(t *testing.T) {
	data, err := blankPagePDF(612, 792, White)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4\n")))
	assert.True(t, bytes.HasSuffix(data, []byte("%%EOF\n")))
	assert.Contains(t, string(data), "/MediaBox [0 0 612.00 792.00]")
	assert.Contains(t, string(data), "1.0000 1.0000 1.0000 rg")
	assert.Equal(t, 1, bytes.Count(data, []byte("/Type /Page ")))
}

func TestBlankPagePDF_XrefOffsets(t *testing.T) {
	data, err := blankPagePDF(200, 100, Black)
	require.NoError(t, err)

	// Every xref entry must point at the "N 0 obj" header it claims to.
	xref := bytes.Index(data, []byte("xref\n"))
	require.Greater(t, xref, 0)
	lines := bytes.Split(data[xref:], []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 7)
	for i := 1; i <= 4; i++ {
		entry := lines[2+i]
		offset, err := strconv.Atoi(string(entry[:10]))
		require.NoError(t, err)
		want := fmt.Sprintf("%d 0 obj", i)
		assert.True(t, bytes.HasPrefix(data[offset:], []byte(want)), "object %d", i)
	}

	// startxref must point at the xref table itself.
	start := bytes.Index(data, []byte("startxref\n"))
	require.Greater(t, start, 0)
	rest := bytes.Split(data[start+len("startxref\n"):], []byte("\n"))
	got, err := strconv.Atoi(string(rest[0]))
	require.NoError(t, err)
	assert.Equal(t, xref, got)
}

func TestBlankPagePDF_StreamLength(t *testing.T) {
	data, err := blankPagePDF(50, 50, Color{R: 1})
	require.NoError(t, err)

	s := bytes.Index(data, []byte("stream\n"))
	e := bytes.Index(data, []byte("endstream"))
	require.Greater(t, s, 0)
	require.Greater(t, e, s)
	length := e - s - len("stream\n")

	assert.Contains(t, string(data), fmt.Sprintf("/Length %d >>", length))
}

func TestBlankPagePDF_InvalidExtent(t *testing.T) {
	for _, dims := range [][2]float64{{0, 100}, {100, 0}, {-1, 100}, {100, -1}} {
		_, err := blankPagePDF(dims[0], dims[1], White)
		assert.Error(t, err, "extent %v", dims)
	}
}
