package pdf

import (
	"fmt"

	"github.com/docmason/mcp-pdf-editor/internal/descriptions"
)

// ServerInfo reports server capabilities. The compression probe is the
// only part that touches the host; everything else is static.
type ServerInfo struct {
	service *Service
}

// NewServerInfo creates a new server info handler
func NewServerInfo(service *Service) *ServerInfo {
	return &ServerInfo{service: service}
}

// GetServerInfo builds the capability report for the running server
func (p *ServerInfo) GetServerInfo(serverName, version string) (*ServerInfoResult, error) {
	return &ServerInfoResult{
		ServerName:           serverName,
		Version:              version,
		MaxFileSize:          p.service.maxFileSize,
		GhostscriptAvailable: p.service.compressor.Available(),
		CompressionMethods:   p.service.CompressionMethods(),
		AvailableTools:       p.getAvailableTools(),
		UsageGuidance:        p.getUsageGuidance(),
	}, nil
}

// getAvailableTools returns the list of available tools
func (p *ServerInfo) getAvailableTools() []ToolInfo {
	return []ToolInfo{
		{
			Name:        "pdf_delete_pages",
			Description: descriptions.GetToolDescription("pdf_delete_pages"),
			Usage:       "Use this tool to remove specific pages from a PDF document.",
			Parameters: "pdf_data (required): Base64-encoded PDF, pages (required): 1-based page numbers to delete, " +
				"password (optional): Password for encrypted documents",
		},
		{
			Name:        "pdf_extract_pages",
			Description: descriptions.GetToolDescription("pdf_extract_pages"),
			Usage:       "Use this tool to build a new document containing only the selected pages.",
			Parameters: "pdf_data (required): Base64-encoded PDF, pages (required): 1-based page numbers to keep, " +
				"password (optional): Password for encrypted documents",
		},
		{
			Name:        "pdf_insert_blank_page",
			Description: descriptions.GetToolDescription("pdf_insert_blank_page"),
			Usage:       "Use this tool to insert an empty page before or after a reference page.",
			Parameters: "pdf_data (required): Base64-encoded PDF, reference_page (required): 1-based anchor page, " +
				"position (optional): 'before' or 'after' (default 'after'), " +
				"width/height (optional): page size in points (defaults to the reference page)",
		},
		{
			Name:        "pdf_insert_pdf_pages",
			Description: descriptions.GetToolDescription("pdf_insert_pdf_pages"),
			Usage:       "Use this tool to insert pages from a second PDF at a chosen position.",
			Parameters: "target_pdf_data and source_pdf_data (required): Base64-encoded PDFs, " +
				"reference_page (required): 1-based anchor page in the target, " +
				"position (optional): 'before' or 'after', pages_to_insert (optional): source pages (default all), " +
				"target_password/source_password (optional)",
		},
		{
			Name:        "pdf_rotate_pages",
			Description: descriptions.GetToolDescription("pdf_rotate_pages"),
			Usage:       "Use this tool to rotate pages relative to their current orientation.",
			Parameters: "pdf_data (required): Base64-encoded PDF, pages (required): 1-based page numbers, " +
				"rotation (required): 90, 180 or 270 degrees, password (optional)",
		},
		{
			Name:        "pdf_redact",
			Description: descriptions.GetToolDescription("pdf_redact"),
			Usage:       "Use this tool to permanently black out rectangular areas and optionally place replacement text.",
			Parameters: "pdf_data (required): Base64-encoded PDF, redactions (required): list of {page, x, y, width, height, fill_color}, " +
				"replacement_texts (optional): list of {page, x, y, text, font_size, color}, password (optional)",
		},
		{
			Name:        "pdf_compress",
			Description: descriptions.GetToolDescription("pdf_compress"),
			Usage:       "Use this tool to shrink a PDF with Ghostscript and get before/after statistics.",
			Parameters: "pdf_data (required): Base64-encoded PDF, method (required): compression preset, " +
				"rasterize (optional): convert pages to images for maximum compression",
		},
		{
			Name:        "pdf_compression_methods",
			Description: descriptions.GetToolDescription("pdf_compression_methods"),
			Usage:       "Use this tool to list the available compression presets and their DPI targets.",
			Parameters:  "No parameters required",
		},
		{
			Name:        "pdf_document_info",
			Description: descriptions.GetToolDescription("pdf_document_info"),
			Usage:       "Use this tool to inspect page count, encryption state and per-page geometry.",
			Parameters:  "pdf_data (required): Base64-encoded PDF, password (optional): Password for encrypted documents",
		},
		{
			Name:        "pdf_server_info",
			Description: descriptions.GetToolDescription("pdf_server_info"),
			Usage:       "Use this tool to get comprehensive server information and available capabilities.",
			Parameters:  "No parameters required",
		},
	}
}

// getUsageGuidance returns comprehensive usage guidance
func (p *ServerInfo) getUsageGuidance() string {
	maxFileSizeMB := p.service.maxFileSize / (1024 * 1024)

	return fmt.Sprintf(`PDF Editor MCP Server Usage Guide:

1. INSPECT FIRST:
   - Use 'pdf_document_info' to learn a document's page count, dimensions and encryption state
   - Use 'pdf_server_info' to check capabilities, including Ghostscript availability

2. EDIT PAGES:
   - Use 'pdf_delete_pages' to remove pages (the full document cannot be deleted)
   - Use 'pdf_extract_pages' to keep only selected pages, in the order you list them
   - Use 'pdf_insert_blank_page' and 'pdf_insert_pdf_pages' to add pages at a precise position
   - Use 'pdf_rotate_pages' with 90, 180 or 270 degrees; rotation is relative to the current orientation

3. REDACT SENSITIVE CONTENT:
   - Use 'pdf_redact' with rectangular areas in PDF points, origin at the top-left of the page
   - Fill color defaults to white; replacement text defaults to 12pt black
   - Redaction paints an opaque fill over the area and is not reversible by the reader

4. COMPRESS FOR DISTRIBUTION:
   - Use 'pdf_compression_methods' to list presets from gs-minimum (36 DPI) to gs-printer (300 DPI)
   - Use 'pdf_compress' with a preset; enable rasterize only when maximum size reduction matters
   - Compression requires Ghostscript on the server host

IMPORTANT NOTES:
- All PDF payloads travel as base64-encoded strings
- Page numbers are 1-based; out-of-range numbers are skipped silently
- Duplicated page numbers are applied once
- The server accepts payloads up to %dMB
- Encrypted documents need their password on every request; the server keeps no state between calls`, maxFileSizeMB)
}
