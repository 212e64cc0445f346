package rendering

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	fullDocumentRe = regexp.MustCompile(`(?i)<(?:!doctype|html)\b`)
	labelOnlyRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z &/]{0,30}:$`)
)

// cleanupHTML removes the structure left behind by emptied placeholders:
// paragraphs, list items and headings with no text, rows whose every cell
// is blank, and elements reduced to a bare "Label:".
func cleanupHTML(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	doc.Find("p, li, h1, h2, h3, h4, h5, h6, span").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if (text == "" && s.Find("img").Length() == 0) || labelOnlyRe.MatchString(text) {
			s.Remove()
		}
	})

	doc.Find("tr").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			s.Remove()
		}
	})

	doc.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		if s.Find("li").Length() == 0 {
			s.Remove()
		}
	})

	// A heading whose section emptied out has nothing after it, or runs
	// straight into the next heading. Reverse order so trailing headings
	// cascade.
	headings := doc.Find("h2, h3, h4, h5, h6")
	for i := headings.Length() - 1; i >= 0; i-- {
		s := headings.Slice(i, i+1)
		next := s.Next()
		if next.Length() == 0 || next.Is("h2, h3, h4, h5, h6") {
			s.Remove()
		}
	}

	if fullDocumentRe.MatchString(markup) {
		return doc.Html()
	}
	// Fragment input: goquery wraps it in html/body, unwrap on the way out.
	return doc.Find("body").Html()
}
