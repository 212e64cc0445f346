package export

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var markupRe = regexp.MustCompile(`(?i)<(?:!doctype|html|head|body|div|p|table|span)\b`)

// Block-level elements that end a line when flattening markup to text.
const blockSelector = "p, li, h1, h2, h3, h4, h5, h6, tr"

// DocumentText flattens a resume document to plain text. Plain input is
// returned trimmed; HTML input is reduced to one line per block element.
func DocumentText(markup string) string {
	if !markupRe.MatchString(markup) {
		return strings.TrimSpace(markup)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}
	doc.Find("style, script").Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested blocks are visited on their own, skip the container pass.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}
