package pdf

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// compressionMethod maps a named preset to a Ghostscript quality profile.
type compressionMethod struct {
	Preset      string
	DPI         int
	Name        string
	Description string
}

// compressionMethods is the fixed preset table. Keys are the wire-level
// method names.
var compressionMethods = map[string]compressionMethod{
	"gs-minimum": {Preset: "screen", DPI: 36, Name: "Minimum (36 DPI)", Description: "Smallest file - very low quality"},
	"gs-screen":  {Preset: "screen", DPI: 72, Name: "Screen (72 DPI)", Description: "Low quality - good for screen viewing"},
	"gs-ebook":   {Preset: "ebook", DPI: 150, Name: "eBook (150 DPI)", Description: "Balanced quality and size"},
	"gs-printer": {Preset: "printer", DPI: 300, Name: "Print (300 DPI)", Description: "High quality - suitable for printing"},
}

// methodOrder fixes the listing order of the preset table.
var methodOrder = []string{"gs-minimum", "gs-screen", "gs-ebook", "gs-printer"}

// CompressionMethods returns the available presets in stable order.
func CompressionMethods() []MethodInfo {
	infos := make([]MethodInfo, 0, len(methodOrder))
	for _, key := range methodOrder {
		m := compressionMethods[key]
		infos = append(infos, MethodInfo{
			Method:      key,
			Name:        m.Name,
			Description: m.Description,
			DPI:         m.DPI,
		})
	}
	return infos
}

// Compressor invokes Ghostscript against temporary on-disk buffers and
// computes before/after statistics. One blocking subprocess invocation
// per call, bounded by the configured timeout.
type Compressor struct {
	bin     string
	timeout time.Duration
}

// NewCompressor creates a compressor using the given Ghostscript binary
// (name or path) and per-call timeout.
func NewCompressor(bin string, timeout time.Duration) *Compressor {
	if bin == "" {
		bin = "gs"
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Compressor{bin: bin, timeout: timeout}
}

// Available reports whether the Ghostscript binary responds to a version
// probe.
func (c *Compressor) Available() bool {
	if _, err := exec.LookPath(c.bin); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, c.bin, "--version").Run() == nil
}

// Compress runs the named preset against the input bytes. Temporary
// buffers are removed on every exit path. A negative ratio (the tool
// inflated the file) is a valid, reportable outcome.
func (c *Compressor) Compress(ctx context.Context, input []byte, method string, rasterize bool) (*CompressResult, error) {
	const op = "compress"

	m, ok := compressionMethods[method]
	if !ok {
		return nil, invalidInput(op, fmt.Errorf("%w: %q", ErrInvalidMethod, method))
	}

	if !c.Available() {
		return nil, processingFailed(op, ErrToolUnavailable)
	}

	tmpDir, err := os.MkdirTemp("", "pdfcompress")
	if err != nil {
		return nil, processingFailed(op, err)
	}
	defer os.RemoveAll(tmpDir)

	inputPath := filepath.Join(tmpDir, "input.pdf")
	outputPath := filepath.Join(tmpDir, "output.pdf")
	if err := os.WriteFile(inputPath, input, 0o600); err != nil {
		return nil, processingFailed(op, err)
	}

	args := ghostscriptArgs(m, method, rasterize, inputPath, outputPath)

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.bin, args...)
	combined, err := cmd.CombinedOutput()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, processingFailed(op, fmt.Errorf("ghostscript timed out after %s", c.timeout))
		}
		return nil, processingFailed(op, fmt.Errorf("ghostscript failed: %s", string(combined)))
	}

	output, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, processingFailed(op, fmt.Errorf("compression output file was not created"))
	}

	return &CompressResult{
		PDF:   output,
		Stats: compressionStats(int64(len(input)), int64(len(output))),
	}, nil
}

// ghostscriptArgs builds the deterministic argument profile for a preset.
// Rasterization flattens every page to an image at the preset resolution;
// the structural path recompresses streams and downsamples images, with
// gs-minimum forcing explicit downsample thresholds instead of relying on
// the tool's defaults.
func ghostscriptArgs(m compressionMethod, method string, rasterize bool, inputPath, outputPath string) []string {
	if rasterize {
		return []string{
			"-sDEVICE=pdfimage24",
			fmt.Sprintf("-r%d", m.DPI),
			"-dNOPAUSE",
			"-dQUIET",
			"-dBATCH",
			"-sOutputFile=" + outputPath,
			inputPath,
		}
	}

	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		fmt.Sprintf("-dPDFSETTINGS=/%s", m.Preset),
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dColorImageDownsampleType=/Bicubic",
		"-dGrayImageDownsampleType=/Bicubic",
		"-dMonoImageDownsampleType=/Bicubic",
	}

	if method == "gs-minimum" {
		args = append(args,
			fmt.Sprintf("-dColorImageResolution=%d", m.DPI),
			fmt.Sprintf("-dGrayImageResolution=%d", m.DPI),
			fmt.Sprintf("-dMonoImageResolution=%d", m.DPI),
			"-dDownsampleColorImages=true",
			"-dDownsampleGrayImages=true",
			"-dDownsampleMonoImages=true",
		)
	}

	return append(args, "-sOutputFile="+outputPath, inputPath)
}

// compressionStats derives the reportable statistics of one pass. The
// ratio is zero when the original length is zero.
func compressionStats(originalSize, compressedSize int64) CompressionStats {
	var ratio float64
	if originalSize > 0 {
		ratio = float64(originalSize-compressedSize) / float64(originalSize) * 100
		ratio = math.Round(ratio*100) / 100
	}

	return CompressionStats{
		OriginalSize:     originalSize,
		CompressedSize:   compressedSize,
		CompressionRatio: ratio,
		SavedBytes:       originalSize - compressedSize,
	}
}
