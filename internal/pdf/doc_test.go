package pdf

import (
	"fmt"

	"github.com/docmason/mcp-pdf-editor/internal/pdf/engine"
)

// fakePage is an in-memory page carrying a label so tests can assert
// identity and order after structural mutations.
type fakePage struct {
	label    string
	width    float64
	height   float64
	rotation int
	redacted []engine.Rect
	fills    []engine.Color
	texts    []fakeText
}

type fakeText struct {
	at    engine.Point
	text  string
	size  float64
	color engine.Color
}

func (p *fakePage) Size() (float64, float64) { return p.width, p.height }
func (p *fakePage) Rotation() int            { return p.rotation }

type pendingArea struct {
	rect engine.Rect
	fill engine.Color
}

// fakeDoc implements engine.Document in memory. commitLog records the
// order of redaction commits and text insertions for ordering assertions.
type fakeDoc struct {
	pages     []*fakePage
	encrypted bool
	password  string
	authed    bool
	closed    bool
	pending   map[int][]pendingArea
	commitLog []string
}

// newFakeDoc builds a document of n letter-sized pages labeled p1..pn.
func newFakeDoc(n int) *fakeDoc {
	d := &fakeDoc{pending: map[int][]pendingArea{}, authed: true}
	for i := 1; i <= n; i++ {
		d.pages = append(d.pages, &fakePage{label: fmt.Sprintf("p%d", i), width: 612, height: 792})
	}
	return d
}

func newEncryptedFakeDoc(n int, password string) *fakeDoc {
	d := newFakeDoc(n)
	d.encrypted = true
	d.password = password
	d.authed = false
	return d
}

func (d *fakeDoc) labels() []string {
	out := make([]string, len(d.pages))
	for i, p := range d.pages {
		out[i] = p.label
	}
	return out
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) Page(i int) (engine.Page, error) {
	if i < 0 || i >= len(d.pages) {
		return nil, fmt.Errorf("page %d out of range", i)
	}
	return d.pages[i], nil
}

func (d *fakeDoc) DeletePage(i int) error {
	if i < 0 || i >= len(d.pages) {
		return fmt.Errorf("page %d out of range", i)
	}
	d.pages = append(d.pages[:i], d.pages[i+1:]...)
	return nil
}

func (d *fakeDoc) NewPage(at int, width, height float64) error {
	if at < 0 || at > len(d.pages) {
		return fmt.Errorf("position %d out of range", at)
	}
	p := &fakePage{label: "blank", width: width, height: height}
	d.pages = append(d.pages[:at], append([]*fakePage{p}, d.pages[at:]...)...)
	return nil
}

func (d *fakeDoc) InsertRange(src engine.Document, from, to, at int) error {
	sd, ok := src.(*fakeDoc)
	if !ok {
		return fmt.Errorf("source is not a fakeDoc")
	}
	if from < 0 || to < from || to >= len(sd.pages) {
		return fmt.Errorf("span %d-%d out of range", from, to)
	}
	if at < 0 || at > len(d.pages) {
		return fmt.Errorf("position %d out of range", at)
	}

	span := make([]*fakePage, 0, to-from+1)
	for _, p := range sd.pages[from : to+1] {
		cp := *p
		span = append(span, &cp)
	}
	d.pages = append(d.pages[:at], append(span, d.pages[at:]...)...)
	return nil
}

func (d *fakeDoc) SetRotation(i int, rotation int) error {
	if i < 0 || i >= len(d.pages) {
		return fmt.Errorf("page %d out of range", i)
	}
	d.pages[i].rotation = rotation
	return nil
}

func (d *fakeDoc) AddRedactionArea(page int, area engine.Rect, fill engine.Color) error {
	if page < 0 || page >= len(d.pages) {
		return fmt.Errorf("page %d out of range", page)
	}
	d.pending[page] = append(d.pending[page], pendingArea{rect: area, fill: fill})
	return nil
}

func (d *fakeDoc) CommitRedactions(page int) error {
	if page < 0 || page >= len(d.pages) {
		return fmt.Errorf("page %d out of range", page)
	}
	for _, a := range d.pending[page] {
		d.pages[page].redacted = append(d.pages[page].redacted, a.rect)
		d.pages[page].fills = append(d.pages[page].fills, a.fill)
	}
	delete(d.pending, page)
	d.commitLog = append(d.commitLog, fmt.Sprintf("commit:%d", page))
	return nil
}

func (d *fakeDoc) InsertText(page int, at engine.Point, text string, size float64, color engine.Color) error {
	if page < 0 || page >= len(d.pages) {
		return fmt.Errorf("page %d out of range", page)
	}
	d.pages[page].texts = append(d.pages[page].texts, fakeText{at: at, text: text, size: size, color: color})
	d.commitLog = append(d.commitLog, fmt.Sprintf("text:%d", page))
	return nil
}

func (d *fakeDoc) IsEncrypted() bool { return d.encrypted }

func (d *fakeDoc) Authenticate(password string) bool {
	if !d.encrypted {
		return true
	}
	if password == d.password {
		d.authed = true
		return true
	}
	return false
}

func (d *fakeDoc) Serialize() ([]byte, error) {
	return []byte(fmt.Sprintf("%%PDF-fake %d pages", len(d.pages))), nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

// fakeEngine hands out prepared documents in order.
type fakeEngine struct {
	docs []*fakeDoc
	err  error
}

func (e *fakeEngine) Open(data []byte, password string) (engine.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	if len(e.docs) == 0 {
		return nil, fmt.Errorf("no document prepared")
	}
	doc := e.docs[0]
	e.docs = e.docs[1:]
	return doc, nil
}
