// Package export turns a substituted resume document into a downloadable
// artifact: HTML and plain text directly, PDF through a headless browser,
// DOCX through a minimal WordprocessingML writer.
package export

import (
	"context"
	"fmt"
	"strings"
)

// Format is a supported export format.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// UnsupportedExportFormatError indicates a format Export cannot produce.
type UnsupportedExportFormatError struct {
	Format string
}

func (e *UnsupportedExportFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %s", e.Format)
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatText, "text":
		return FormatText, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", &UnsupportedExportFormatError{Format: s}
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// Export produces the document bytes for markup in the requested format.
// The renderer is only consulted for PDF output.
func Export(ctx context.Context, renderer Renderer, markup string, format Format) ([]byte, error) {
	switch format {
	case FormatHTML:
		return []byte(BuildDocument(markup)), nil
	case FormatText:
		return []byte(DocumentText(markup)), nil
	case FormatPDF:
		if renderer == nil {
			return nil, fmt.Errorf("pdf export requires a renderer")
		}
		return renderer.RenderPDF(ctx, BuildDocument(markup))
	case FormatDOCX:
		return WriteDocx(DocumentText(markup))
	default:
		return nil, &UnsupportedExportFormatError{Format: string(format)}
	}
}
