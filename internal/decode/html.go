package decode

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// DecodeTemplate converts an uploaded template file into text suitable for
// placeholder substitution. DOCX templates keep paragraph structure as
// HTML so the populated output can be previewed directly; HTML templates
// pass through untouched; everything else goes through Decode.
func DecodeTemplate(filename string, content []byte) (string, error) {
	switch normalizeExt(filename) {
	case "html", "htm":
		text := strings.TrimSpace(string(content))
		if text == "" {
			return "", &EmptyDocumentError{Filename: filename}
		}
		return text, nil
	case "docx":
		markup, err := docxHTML(content)
		if err != nil {
			return "", &DecodeFailureError{Format: "docx", Cause: err}
		}
		if strings.TrimSpace(xmlTagRe.ReplaceAllString(markup, "")) == "" {
			return "", &EmptyDocumentError{Filename: filename}
		}
		return markup, nil
	default:
		return Decode(filename, content)
	}
}

// docxHTML unzips the OOXML package and maps word/document.xml paragraphs
// onto <p> elements, preserving run text and little else.
func docxHTML(content []byte) (string, error) {
	document, err := readDocumentXML(content)
	if err != nil {
		return "", err
	}

	// Paragraph and tab markers first, then strip the remaining WordprocessingML tags.
	document = strings.ReplaceAll(document, "<w:tab/>", "\t")
	document = strings.ReplaceAll(document, "</w:p>", "\x00")
	document = xmlTagRe.ReplaceAllString(document, "")

	var sb strings.Builder
	for _, paragraph := range strings.Split(document, "\x00") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(paragraph))
		sb.WriteString("</p>\n")
	}
	return sb.String(), nil
}

// readDocumentXML extracts word/document.xml from a DOCX zip archive.
func readDocumentXML(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no word/document.xml in archive")
}
