package decode

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// Decode converts an uploaded file into plain text. The format is chosen by
// the lowercase file extension. It returns UnsupportedFormatError for
// unknown extensions, EmptyDocumentError when extraction yields only
// whitespace, and DecodeFailureError when the underlying decoder fails.
// Decoding reads the input only; it has no other side effects.
func Decode(filename string, content []byte) (string, error) {
	format := normalizeExt(filename)

	var (
		text string
		err  error
	)
	switch format {
	case "txt":
		text = string(content)
	case "pdf":
		text, err = decodePDF(content)
	case "docx", "doc":
		text, err = decodeWord(format, content)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
	if err != nil {
		return "", &DecodeFailureError{Format: format, Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &EmptyDocumentError{Filename: filename}
	}
	return text, nil
}

// SupportedFormats lists the extensions Decode accepts, without dots.
func SupportedFormats() []string {
	return []string{"txt", "pdf", "docx", "doc"}
}

// normalizeExt returns the lowercase extension without the leading dot.
func normalizeExt(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// decodePDF extracts the text layer from every page in page order. Page
// texts are joined with a newline; fragments within a page are joined by
// the reader with single spaces. A scanned PDF with no text layer yields
// an empty string, which the caller reports as EmptyDocumentError.
func decodePDF(content []byte) (text string, err error) {
	// The underlying reader panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimSpace(pageText))
	}

	return strings.Join(pages, "\n"), nil
}

// decodeWord extracts raw text from an OOXML (.docx) or legacy (.doc)
// Word document.
func decodeWord(format string, content []byte) (string, error) {
	mimeType := docconv.MimeTypeByExtension("resume." + format)
	res, err := docconv.Convert(bytes.NewReader(content), mimeType, true)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}
