package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPUEngine implements Engine using pdfcpu
type PDFCPUEngine struct{}

// NewPDFCPUEngine creates a new pdfcpu-backed engine
func NewPDFCPUEngine() *PDFCPUEngine {
	return &PDFCPUEngine{}
}

// Open opens raw PDF bytes into a document. An encrypted document whose
// credential is not the empty string opens in a locked state; Authenticate
// unlocks it. Anything that is not a PDF fails with ErrInvalidDocument.
func (e *PDFCPUEngine) Open(data []byte, password string) (Document, error) {
	if len(data) == 0 {
		return nil, &EngineError{Op: "open", Err: ErrInvalidDocument}
	}

	conf := newConfiguration(password)
	buf := make([]byte, len(data))
	copy(buf, data)

	ctx, err := api.ReadContext(bytes.NewReader(buf), conf)
	if err != nil {
		if !hasEncryptMarker(buf) {
			return nil, &EngineError{Op: "open", Err: fmt.Errorf("%w: %v", ErrInvalidDocument, err)}
		}
		// Encrypted and the supplied credential did not unlock it.
		return &pdfcpuDocument{
			data:      buf,
			conf:      newConfiguration(""),
			encrypted: true,
			pending:   map[int][]redactArea{},
		}, nil
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, &EngineError{Op: "open", Err: fmt.Errorf("%w: %v", ErrInvalidDocument, err)}
	}

	return &pdfcpuDocument{
		data:      buf,
		conf:      conf,
		pageCount: ctx.PageCount,
		encrypted: ctx.Encrypt != nil || hasEncryptMarker(buf),
		authed:    true,
		pending:   map[int][]redactArea{},
	}, nil
}

// hasEncryptMarker scans raw bytes for an encryption dictionary reference.
// pdfcpu refuses to read a locked document, so the marker is the only
// signal available before authentication.
func hasEncryptMarker(data []byte) bool {
	return bytes.Contains(data, []byte("/Encrypt"))
}

func newConfiguration(password string) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	return conf
}

type redactArea struct {
	rect Rect
	fill Color
}

// pdfcpuDocument implements Document over raw PDF bytes. Every mutation
// rewrites the byte buffer through a pdfcpu stream-level call, so the
// buffer is always a complete, serializable document.
type pdfcpuDocument struct {
	data      []byte
	conf      *model.Configuration
	pageCount int
	encrypted bool
	authed    bool
	closed    bool
	pending   map[int][]redactArea
}

func (d *pdfcpuDocument) ready() error {
	if d.closed {
		return &EngineError{Op: "document", Err: ErrDocumentClosed}
	}
	if d.encrypted && !d.authed {
		return &EngineError{Op: "document", Err: ErrNotAuthed}
	}
	return nil
}

func (d *pdfcpuDocument) checkPage(i int) error {
	if i < 0 || i >= d.pageCount {
		return &EngineError{Op: "page", Err: fmt.Errorf("%w: %d", ErrInvalidPage, i)}
	}
	return nil
}

// PageCount returns the current page count. Zero for a locked document.
func (d *pdfcpuDocument) PageCount() int {
	return d.pageCount
}

func (d *pdfcpuDocument) IsEncrypted() bool {
	return d.encrypted
}

// Authenticate re-reads the document with the given credential.
func (d *pdfcpuDocument) Authenticate(password string) bool {
	if d.closed {
		return false
	}
	if !d.encrypted {
		return true
	}

	conf := newConfiguration(password)
	ctx, err := api.ReadContext(bytes.NewReader(d.data), conf)
	if err != nil {
		return false
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return false
	}

	d.conf = conf
	d.pageCount = ctx.PageCount
	d.authed = true
	return true
}

func (d *pdfcpuDocument) readContext() (*model.Context, error) {
	ctx, err := api.ReadContext(bytes.NewReader(d.data), d.conf)
	if err != nil {
		return nil, &EngineError{Op: "read", Err: err}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, &EngineError{Op: "read", Err: err}
	}
	return ctx, nil
}

// replace installs the result of a mutation and refreshes the page count.
func (d *pdfcpuDocument) replace(op string, data []byte) error {
	ctx, err := api.ReadContext(bytes.NewReader(data), d.conf)
	if err != nil {
		return &EngineError{Op: op, Err: err}
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return &EngineError{Op: op, Err: err}
	}
	d.data = data
	d.pageCount = ctx.PageCount
	return nil
}

// Page returns extent and rotation of the page at 0-indexed position i.
func (d *pdfcpuDocument) Page(i int) (Page, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}
	if err := d.checkPage(i); err != nil {
		return nil, err
	}

	ctx, err := d.readContext()
	if err != nil {
		return nil, err
	}

	_, _, inhPAttrs, err := ctx.PageDict(i+1, false)
	if err != nil {
		return nil, &EngineError{Op: "page", Err: err}
	}

	p := &pdfcpuPage{number: i, rotation: ((inhPAttrs.Rotate % 360) + 360) % 360}
	if inhPAttrs.MediaBox != nil {
		p.width = inhPAttrs.MediaBox.Width()
		p.height = inhPAttrs.MediaBox.Height()
	}
	return p, nil
}

// DeletePage removes the page at 0-indexed position i.
func (d *pdfcpuDocument) DeletePage(i int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.checkPage(i); err != nil {
		return err
	}

	var buf bytes.Buffer
	sel := []string{strconv.Itoa(i + 1)}
	if err := api.RemovePages(bytes.NewReader(d.data), &buf, sel, d.conf); err != nil {
		return &EngineError{Op: "delete_page", Err: err}
	}
	return d.replace("delete_page", buf.Bytes())
}

// NewPage inserts a blank page of the given extent at 0-indexed position at.
func (d *pdfcpuDocument) NewPage(at int, width, height float64) error {
	if err := d.ready(); err != nil {
		return err
	}
	if at < 0 || at > d.pageCount {
		return &EngineError{Op: "new_page", Err: fmt.Errorf("%w: %d", ErrInvalidPage, at)}
	}

	blank, err := blankPagePDF(width, height, White)
	if err != nil {
		return &EngineError{Op: "new_page", Err: err}
	}
	spliced, err := d.splice(blank, at)
	if err != nil {
		return &EngineError{Op: "new_page", Err: err}
	}
	return d.replace("new_page", spliced)
}

// InsertRange inserts the contiguous 0-indexed span [from, to] of src at
// 0-indexed position at.
func (d *pdfcpuDocument) InsertRange(src Document, from, to, at int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if at < 0 || at > d.pageCount {
		return &EngineError{Op: "insert_range", Err: fmt.Errorf("%w: %d", ErrInvalidPage, at)}
	}
	if from < 0 || to < from || to >= src.PageCount() {
		return &EngineError{Op: "insert_range", Err: fmt.Errorf("%w: span %d-%d", ErrInvalidPage, from, to)}
	}

	sd, ok := src.(*pdfcpuDocument)
	if !ok {
		return &EngineError{Op: "insert_range", Err: fmt.Errorf("source document uses a different backend")}
	}
	if err := sd.ready(); err != nil {
		return err
	}

	// Trim the source down to the requested span, then splice it in.
	var span bytes.Buffer
	sel := []string{fmt.Sprintf("%d-%d", from+1, to+1)}
	if err := api.Trim(bytes.NewReader(sd.data), &span, sel, sd.conf); err != nil {
		return &EngineError{Op: "insert_range", Err: err}
	}
	spliced, err := d.splice(span.Bytes(), at)
	if err != nil {
		return &EngineError{Op: "insert_range", Err: err}
	}
	return d.replace("insert_range", spliced)
}

// splice merges the given single- or multi-page document into this one so
// that its pages start at 0-indexed position at.
func (d *pdfcpuDocument) splice(insert []byte, at int) ([]byte, error) {
	var parts [][]byte

	if at > 0 {
		var head bytes.Buffer
		sel := []string{fmt.Sprintf("1-%d", at)}
		if err := api.Trim(bytes.NewReader(d.data), &head, sel, d.conf); err != nil {
			return nil, err
		}
		parts = append(parts, head.Bytes())
	}

	parts = append(parts, insert)

	if at < d.pageCount {
		var tail bytes.Buffer
		sel := []string{fmt.Sprintf("%d-%d", at+1, d.pageCount)}
		if err := api.Trim(bytes.NewReader(d.data), &tail, sel, d.conf); err != nil {
			return nil, err
		}
		parts = append(parts, tail.Bytes())
	}

	readers := make([]io.ReadSeeker, len(parts))
	for i, p := range parts {
		readers[i] = bytes.NewReader(p)
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(readers, &merged, false, d.conf); err != nil {
		return nil, err
	}
	return merged.Bytes(), nil
}

// SetRotation stores an absolute rotation for the page at 0-indexed
// position i. pdfcpu rotates relative to the stored angle, so the delta is
// derived from the page's current value.
func (d *pdfcpuDocument) SetRotation(i int, rotation int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.checkPage(i); err != nil {
		return err
	}

	p, err := d.Page(i)
	if err != nil {
		return err
	}
	delta := ((rotation-p.Rotation())%360 + 360) % 360
	if delta == 0 {
		return nil
	}

	var buf bytes.Buffer
	sel := []string{strconv.Itoa(i + 1)}
	if err := api.Rotate(bytes.NewReader(d.data), &buf, delta, sel, d.conf); err != nil {
		return &EngineError{Op: "set_rotation", Err: err}
	}
	return d.replace("set_rotation", buf.Bytes())
}

// AddRedactionArea queues a redaction rectangle on the page at 0-indexed
// position page. Queued areas take effect on CommitRedactions.
func (d *pdfcpuDocument) AddRedactionArea(page int, area Rect, fill Color) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.checkPage(page); err != nil {
		return err
	}
	d.pending[page] = append(d.pending[page], redactArea{rect: area, fill: fill})
	return nil
}

// CommitRedactions applies every queued area of the given page by stamping
// the opaque fill over the page content.
func (d *pdfcpuDocument) CommitRedactions(page int) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.checkPage(page); err != nil {
		return err
	}

	areas := d.pending[page]
	if len(areas) == 0 {
		return nil
	}

	p, err := d.Page(page)
	if err != nil {
		return err
	}
	_, pageH := p.Size()

	tmpDir, err := os.MkdirTemp("", "pdfredact")
	if err != nil {
		return &EngineError{Op: "commit_redactions", Err: err}
	}
	defer os.RemoveAll(tmpDir)

	for n, a := range areas {
		stamp, err := blankPagePDF(a.rect.Width, a.rect.Height, a.fill)
		if err != nil {
			return &EngineError{Op: "commit_redactions", Err: err}
		}
		stampPath := filepath.Join(tmpDir, fmt.Sprintf("area%d.pdf", n))
		if err := os.WriteFile(stampPath, stamp, 0o600); err != nil {
			return &EngineError{Op: "commit_redactions", Err: err}
		}

		wm, err := pdfcpu.ParsePDFWatermarkDetails(stampPath, "scale:1 abs, pos:bl, rot:0, op:1", true, types.POINTS)
		if err != nil {
			return &EngineError{Op: "commit_redactions", Err: err}
		}
		// Area coordinates are top-left origin; stamps anchor bottom-left.
		wm.Dx = a.rect.X
		wm.Dy = pageH - a.rect.Y - a.rect.Height

		var buf bytes.Buffer
		sel := []string{strconv.Itoa(page + 1)}
		if err := api.AddWatermarks(bytes.NewReader(d.data), &buf, sel, wm, d.conf); err != nil {
			return &EngineError{Op: "commit_redactions", Err: err}
		}
		if err := d.replace("commit_redactions", buf.Bytes()); err != nil {
			return err
		}
	}

	delete(d.pending, page)
	return nil
}

// InsertText draws a literal text string on the page at 0-indexed position
// page, anchored at the given top-left-origin point.
func (d *pdfcpuDocument) InsertText(page int, at Point, text string, size float64, color Color) error {
	if err := d.ready(); err != nil {
		return err
	}
	if err := d.checkPage(page); err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	p, err := d.Page(page)
	if err != nil {
		return err
	}
	_, pageH := p.Size()

	desc := fmt.Sprintf("fontname:Helvetica, points:%d, scale:1 abs, pos:bl, rot:0, op:1, fillcolor:%s",
		int(size), hexColor(color))
	wm, err := pdfcpu.ParseTextWatermarkDetails(text, desc, true, types.POINTS)
	if err != nil {
		return &EngineError{Op: "insert_text", Err: err}
	}
	wm.Dx = at.X
	wm.Dy = pageH - at.Y

	var buf bytes.Buffer
	sel := []string{strconv.Itoa(page + 1)}
	if err := api.AddWatermarks(bytes.NewReader(d.data), &buf, sel, wm, d.conf); err != nil {
		return &EngineError{Op: "insert_text", Err: err}
	}
	return d.replace("insert_text", buf.Bytes())
}

// Serialize returns the document bytes after a garbage-collecting,
// recompressing optimization pass.
func (d *pdfcpuDocument) Serialize() ([]byte, error) {
	if err := d.ready(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(d.data), &buf, d.conf); err != nil {
		return nil, &EngineError{Op: "serialize", Err: err}
	}
	return buf.Bytes(), nil
}

// Close releases the document buffer. Subsequent calls are no-ops.
func (d *pdfcpuDocument) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.data = nil
	d.pending = nil
	return nil
}

// pdfcpuPage is a point-in-time snapshot of a page's geometry.
type pdfcpuPage struct {
	number   int
	width    float64
	height   float64
	rotation int
}

func (p *pdfcpuPage) Size() (float64, float64) {
	return p.width, p.height
}

func (p *pdfcpuPage) Rotation() int {
	return p.rotation
}

func hexColor(c Color) string {
	clamp := func(v float64) int {
		n := int(v*255 + 0.5)
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}
