package export

import (
	"regexp"
	"strings"
)

var fullDocumentRe = regexp.MustCompile(`(?i)<(!doctype|html)[\s>]`)

// documentStyle is the inline stylesheet applied to wrapped fragments.
const documentStyle = `body { font-family: Georgia, "Times New Roman", serif; max-width: 48em; margin: 2em auto; padding: 0 1em; color: #222; line-height: 1.45; }
h1 { font-size: 1.6em; margin-bottom: 0.2em; }
h2 { font-size: 1.1em; border-bottom: 1px solid #999; padding-bottom: 0.15em; margin-top: 1.2em; }
ul { margin: 0.3em 0; padding-left: 1.4em; }`

// BuildDocument wraps fragment markup into a self-contained HTML document
// with an inline stylesheet. Markup that is already a full document passes
// through unchanged.
func BuildDocument(markup string) string {
	if fullDocumentRe.MatchString(markup) {
		return markup
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	sb.WriteString(documentStyle)
	sb.WriteString("\n</style>\n</head>\n<body>\n")
	sb.WriteString(markup)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}
