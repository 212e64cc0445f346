// Package decode converts uploaded resume and template files of known
// formats into plain text or lightly marked-up HTML.
package decode

import "fmt"

// UnsupportedFormatError indicates the file extension is not one of the
// supported input formats (txt, pdf, docx, doc).
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q", e.Format)
}

// EmptyDocumentError indicates decoding produced no usable text, e.g. a
// scanned image-only PDF or a blank upload.
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("document %q contains no extractable text", e.Filename)
	}
	return "document contains no extractable text"
}

// DecodeFailureError indicates the underlying format decoder failed, e.g. a
// corrupt archive, an encrypted PDF, or a non-OOXML binary posing as .doc.
type DecodeFailureError struct {
	Format string
	Cause  error
}

func (e *DecodeFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s document", e.Format)
}

func (e *DecodeFailureError) Unwrap() error {
	return e.Cause
}
