package engine

import (
	"fmt"
	"strings"
)

// blankPagePDF builds a minimal single-page PDF of the given extent whose
// content is a single rectangle filling the page with the given color.
// It backs blank-page insertion and redaction fill stamps.
func blankPagePDF(width, height float64, fill Color) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid page extent %gx%g", width, height)
	}

	content := fmt.Sprintf("%.4f %.4f %.4f rg\n0 0 %.2f %.2f re\nf\n",
		fill.R, fill.G, fill.B, width, height)

	var b strings.Builder
	offsets := make([]int, 5)

	b.WriteString("%PDF-1.4\n")

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	fmt.Fprintf(&b, "3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Contents 4 0 R /Resources << >> >>\nendobj\n",
		width, height)

	offsets[4] = b.Len()
	fmt.Fprintf(&b, "4 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
		len(content), content)

	xrefOffset := b.Len()
	b.WriteString("xref\n0 5\n")
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 4; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return []byte(b.String()), nil
}
