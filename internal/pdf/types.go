package pdf

// Request Types

// DeletePagesRequest represents a request to delete pages from a PDF
type DeletePagesRequest struct {
	PDF      []byte `json:"-"`
	Pages    []int  `json:"pages"`
	Password string `json:"-"`
}

// ExtractPagesRequest represents a request to keep only the given pages
type ExtractPagesRequest struct {
	PDF      []byte `json:"-"`
	Pages    []int  `json:"pages"`
	Password string `json:"-"`
}

// InsertBlankPageRequest represents a request to insert a blank page
// before or after a reference page. Width and height default to the
// reference page's extent when zero.
type InsertBlankPageRequest struct {
	PDF           []byte  `json:"-"`
	Position      string  `json:"position"`
	ReferencePage int     `json:"reference_page"`
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Password      string  `json:"-"`
}

// InsertPDFPagesRequest represents a request to insert pages from a
// source PDF into a target PDF. An empty PagesToInsert selects the full
// source range.
type InsertPDFPagesRequest struct {
	TargetPDF      []byte `json:"-"`
	SourcePDF      []byte `json:"-"`
	Position       string `json:"position"`
	ReferencePage  int    `json:"reference_page"`
	PagesToInsert  []int  `json:"pages_to_insert,omitempty"`
	TargetPassword string `json:"-"`
	SourcePassword string `json:"-"`
}

// RotatePagesRequest represents a request to rotate pages by a delta of
// 90, 180 or 270 degrees
type RotatePagesRequest struct {
	PDF      []byte `json:"-"`
	Pages    []int  `json:"pages"`
	Rotation int    `json:"rotation"`
	Password string `json:"-"`
}

// RedactionArea is a rectangular area on a 1-indexed page whose content
// is removed and painted over with the fill color (default opaque white)
type RedactionArea struct {
	Page   int       `json:"page"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Fill   ColorSpec `json:"-"`
}

// ReplacementText is a literal string drawn on a redacted page. FontSize
// defaults to 12, color to opaque black; the anchor is baseline-adjusted
// by the font size.
type ReplacementText struct {
	Page     int       `json:"page"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Text     string    `json:"text"`
	FontSize float64   `json:"fontsize,omitempty"`
	Color    ColorSpec `json:"-"`
}

// RedactRequest represents a request to apply redactions to a PDF
type RedactRequest struct {
	PDF              []byte            `json:"-"`
	Areas            []RedactionArea   `json:"redactions"`
	ReplacementTexts []ReplacementText `json:"replacement_texts,omitempty"`
	Password         string            `json:"-"`
}

// CompressRequest represents a request to compress a PDF with a named
// quality preset
type CompressRequest struct {
	PDF       []byte `json:"-"`
	Method    string `json:"method"`
	Rasterize bool   `json:"rasterize,omitempty"`
}

// DocumentInfoRequest represents a request for document metadata
type DocumentInfoRequest struct {
	PDF      []byte `json:"-"`
	Password string `json:"-"`
}

// Response Types

// DeletePagesResult represents the result of a delete pages operation
type DeletePagesResult struct {
	PDF            []byte `json:"-"`
	DeletedPages   int    `json:"deleted_pages"`
	RemainingPages int    `json:"remaining_pages"`
}

// ExtractPagesResult represents the result of an extract pages operation
type ExtractPagesResult struct {
	PDF            []byte `json:"-"`
	ExtractedPages int    `json:"extracted_pages"`
	OriginalPages  int    `json:"original_pages"`
}

// InsertBlankPageResult represents the result of a blank page insertion.
// InsertedAt is the 1-indexed position where the new page landed.
type InsertBlankPageResult struct {
	PDF          []byte `json:"-"`
	NewPageCount int    `json:"new_page_count"`
	InsertedAt   int    `json:"inserted_at"`
}

// InsertPDFPagesResult represents the result of a source page insertion
type InsertPDFPagesResult struct {
	PDF           []byte `json:"-"`
	NewPageCount  int    `json:"new_page_count"`
	InsertedPages int    `json:"inserted_pages"`
}

// RotatePagesResult represents the result of a rotate pages operation
type RotatePagesResult struct {
	PDF          []byte `json:"-"`
	RotatedPages int    `json:"rotated_pages"`
	Rotation     int    `json:"rotation"`
}

// RedactResult represents the result of a redaction pass. The boundary
// reports only success plus the mutated bytes.
type RedactResult struct {
	PDF []byte `json:"-"`
}

// CompressionStats holds deterministic before/after statistics of a
// compression pass. The ratio is a percentage rounded to two decimals and
// can be negative when compression inflates the file.
type CompressionStats struct {
	OriginalSize     int64   `json:"original_size"`
	CompressedSize   int64   `json:"compressed_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	SavedBytes       int64   `json:"saved_bytes"`
}

// CompressResult represents the result of a compression pass
type CompressResult struct {
	PDF   []byte           `json:"-"`
	Stats CompressionStats `json:"stats"`
}

// MethodInfo describes one compression preset
type MethodInfo struct {
	Method      string `json:"method"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DPI         int    `json:"dpi"`
}

// PageInfo describes one page's geometry
type PageInfo struct {
	Number   int     `json:"number"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation int     `json:"rotation"`
}

// DocumentInfoResult represents document metadata: page count, encryption
// state and per-page geometry
type DocumentInfoResult struct {
	PageCount int        `json:"page_count"`
	Encrypted bool       `json:"encrypted"`
	HasText   bool       `json:"has_text"`
	Pages     []PageInfo `json:"pages,omitempty"`
}

// ToolInfo describes one MCP tool exposed by the server
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServerInfoResult represents server capabilities and status
type ServerInfoResult struct {
	ServerName           string       `json:"server_name"`
	Version              string       `json:"version"`
	MaxFileSize          int64        `json:"max_file_size"`
	GhostscriptAvailable bool         `json:"ghostscript_available"`
	CompressionMethods   []MethodInfo `json:"compression_methods"`
	AvailableTools       []ToolInfo   `json:"available_tools"`
	UsageGuidance        string       `json:"usage_guidance"`
}
