package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	// Page Mutation Tools
	PDFDeletePagesDescription = `Delete specific pages from a PDF document.

**When to use:** Need to remove unwanted pages such as blank sheets, cover pages, or confidential sections before sharing a document.

**Why it's useful:** Produces a clean document without manual editing, silently skips page numbers that don't exist, and refuses operations that would leave an empty document.

**Examples:**
• Remove a cover sheet: "Delete page 1 from contract.pdf before archiving"
• Strip appendices: "Delete pages 45, 46 and 47 from report.pdf"
• Clean scans: "Remove the blank pages 2 and 8 from scanned-form.pdf"

**Common workflows:**
1. Document Cleanup: Inspect document → Identify unwanted pages → Delete → Verify remaining count
2. Pre-sharing Preparation: Delete internal pages → Redact sensitive areas → Compress → Distribute

**Best practices:** Page numbers are 1-based; duplicates in the list are applied once. Deleting every page is rejected.`

	PDFExtractPagesDescription = `Extract selected pages into a new PDF document.

**When to use:** Need a standalone document containing only specific pages, such as a single chapter, an executive summary, or one invoice from a batch.

**Why it's useful:** Preserves the order you request the pages in, handles password-protected sources, and leaves the original untouched.

**Examples:**
• Pull a chapter: "Extract pages 12 through 18 from manual.pdf as a standalone guide"
• Split invoices: "Extract page 3 from batch-invoices.pdf for the Smith account"
• Build a summary pack: "Extract pages 1, 5 and 9 from annual-report.pdf"

**Common workflows:**
1. Document Splitting: Inspect document → Choose pages → Extract → Save per-recipient copies
2. Review Packages: Extract relevant pages → Redact → Send for review

**Best practices:** Requested order is preserved in the output; out-of-range page numbers are skipped silently.`

	PDFInsertBlankPageDescription = `Insert a blank page before or after a reference page.

**When to use:** Need a placeholder page for notes, a separator between sections, or space for a signature page.

**Why it's useful:** The blank page inherits the reference page's dimensions unless you specify your own, so the document stays visually consistent.

**Examples:**
• Add a notes page: "Insert a blank page after page 10 of workbook.pdf"
• Create a separator: "Insert a blank page before page 1 of merged-reports.pdf"
• Custom size insert: "Insert a 612x792 blank page after page 3"

**Common workflows:**
1. Document Assembly: Insert separators → Merge sections → Paginate → Finalize
2. Print Preparation: Insert blanks for duplex alignment → Verify page count → Print

**Best practices:** Position is "before" or "after" (default "after"); width and height default to the reference page's size.`

	PDFInsertPDFPagesDescription = `Insert pages from one PDF document into another.

**When to use:** Need to merge an appendix into a report, add a signed page back into a contract, or combine related documents at a specific position.

**Why it's useful:** Both documents can be password protected independently, and the insertion point is placed precisely before or after a reference page.

**Examples:**
• Merge an appendix: "Insert all pages of appendix.pdf after the last page of report.pdf"
• Re-insert a signed page: "Insert page 1 of signed.pdf after page 4 of contract.pdf"
• Combine sections: "Insert pages 2-5 of chapter2.pdf before page 1 of book.pdf"

**Common workflows:**
1. Document Merging: Prepare source → Choose insertion point → Insert → Verify page count
2. Signature Round-trips: Extract signature page → Collect signature → Insert back

**Best practices:** Omitting the page selection inserts the whole source document. A sparse selection inserts the contiguous range spanning the requested pages.`

	PDFRotatePagesDescription = `Rotate specific pages by 90, 180 or 270 degrees.

**When to use:** Fixing scanned pages that came in sideways or upside down, or normalizing orientation across a mixed document.

**Why it's useful:** Rotation is applied relative to each page's current orientation, so repeated fixes compose predictably.

**Examples:**
• Fix a sideways scan: "Rotate pages 3 and 4 of scan.pdf by 90 degrees"
• Flip upside-down pages: "Rotate page 7 of fax.pdf by 180 degrees"
• Normalize a batch: "Rotate all landscape pages by 270 degrees"

**Common workflows:**
1. Scan Cleanup: Inspect orientations → Rotate affected pages → Verify → Archive
2. Print Preparation: Normalize orientation → Paginate → Print

**Best practices:** Only 90, 180 and 270 are accepted; rotation adds to the page's existing rotation modulo 360.`

	PDFRedactDescription = `Permanently black out rectangular areas and optionally place replacement text.

**When to use:** Removing sensitive information such as names, account numbers, or signatures before sharing a document.

**Why it's useful:** Areas are covered with an opaque fill rather than a reversible annotation, and replacement text can label what was removed.

**Examples:**
• Hide account numbers: "Redact the area at x=100 y=200 width=150 height=20 on page 2"
• Label redactions: "Redact the name field and place the text 'REDACTED' over it"
• Multi-page pass: "Redact the header area on every page of statement.pdf"

**Common workflows:**
1. Compliance Redaction: Identify sensitive areas → Redact → Review output → Distribute
2. Template Redaction: Record area coordinates once → Apply to each document in a batch

**Best practices:** Coordinates are in PDF points with the origin at the top-left of the page. Fill color defaults to white; replacement text defaults to black at 12pt.`

	PDFCompressDescription = `Compress a PDF document with Ghostscript and report size savings.

**When to use:** Reducing file size for email, upload limits, or archival storage.

**Why it's useful:** Four quality presets trade size against fidelity, an optional rasterize mode flattens stubborn documents, and the response includes exact before/after statistics.

**Examples:**
• Email-friendly copy: "Compress presentation.pdf with gs-ebook"
• Aggressive shrink: "Compress scan.pdf with gs-screen and rasterize enabled"
• Print-quality archive: "Compress report.pdf with gs-printer"

**Common workflows:**
1. Distribution Preparation: Edit document → Compress → Check ratio → Send
2. Storage Optimization: Batch compress archive → Compare savings → Keep best results

**Best practices:** Start with gs-ebook (150 DPI) for a good balance; use pdf_compression_methods to list all presets. Rasterizing converts pages to images and removes selectable text.`

	PDFCompressionMethodsDescription = `List the available compression presets and their characteristics.

**When to use:** Choosing a compression preset, or presenting the options to a user before compressing.

**Why it's useful:** Returns each preset's identifier, human-readable name, target DPI and description so the tradeoffs are explicit.

**Examples:**
• Preset discovery: "List compression methods before compressing upload.pdf"
• UI population: "Show the user the available quality levels"

**Common workflows:**
1. Guided Compression: List methods → User picks one → Compress → Report savings

**Best practices:** Presets are ordered from most aggressive (gs-minimum, 36 DPI) to highest quality (gs-printer, 300 DPI).`

	PDFDocumentInfoDescription = `Inspect a PDF document's page count, encryption state and per-page geometry.

**When to use:** Before editing a document, to learn its structure, check whether it needs a password, or verify page dimensions.

**Why it's useful:** Reports width, height and rotation for every page plus a quick probe for extractable text, without modifying anything.

**Examples:**
• Pre-edit check: "Get info on upload.pdf to see how many pages it has"
• Password detection: "Check whether statement.pdf is encrypted before processing"
• Layout survey: "List page dimensions of mixed-orientation.pdf"

**Common workflows:**
1. Pre-processing: Inspect document → Validate expectations → Choose operations → Execute
2. Troubleshooting: Inspect → Compare against expected structure → Diagnose

**Best practices:** Run this first when working with an unfamiliar document; supply the password for encrypted documents to get full geometry.`

	// Utility Tools
	PDFServerInfoDescription = `Get real-time server status, available tools, and system capabilities.

**When to use:** Starting work with the PDF editor server, troubleshooting issues, or checking available functionality.

**Why it's useful:** Provides complete overview of server capabilities, current configuration, and Ghostscript availability for informed decision-making.

**Examples:**
• System check: "Verify the server is ready and compression is available before batch processing"
• Troubleshooting: "Check server info to diagnose why compression requests fail"
• Capability discovery: "See all available tools and their descriptions for new projects"

**Common workflows:**
1. Session Startup: Check server info → Verify capabilities → Plan processing approach
2. Debugging: Review server status → Check Ghostscript availability → Verify tool availability

**Best practices:** Run at start of sessions; compression tools require Ghostscript on the server host.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"pdf_delete_pages":        PDFDeletePagesDescription,
	"pdf_extract_pages":       PDFExtractPagesDescription,
	"pdf_insert_blank_page":   PDFInsertBlankPageDescription,
	"pdf_insert_pdf_pages":    PDFInsertPDFPagesDescription,
	"pdf_rotate_pages":        PDFRotatePagesDescription,
	"pdf_redact":              PDFRedactDescription,
	"pdf_compress":            PDFCompressDescription,
	"pdf_compression_methods": PDFCompressionMethodsDescription,
	"pdf_document_info":       PDFDocumentInfoDescription,
	"pdf_server_info":         PDFServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
