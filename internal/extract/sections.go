package extract

import (
	"strings"
)

// sectionSynonyms maps each section field to its header keywords, in
// priority order. The first keyword whose header yields non-empty content
// wins; later keywords are not consulted.
var sectionSynonyms = map[string][]string{
	"summary":        {"summary", "professional summary", "objective", "profile", "about", "about me"},
	"experience":     {"experience", "work experience", "professional experience", "employment", "employment history", "work history", "career", "professional"},
	"education":      {"education", "academic background", "academics", "qualifications"},
	"skills":         {"skills", "technical skills", "core competencies", "competencies", "technologies", "expertise"},
	"projects":       {"projects", "personal projects", "portfolio", "selected projects"},
	"certifications": {"certifications", "certificates", "licenses", "licenses & certifications"},
	"languages":      {"languages", "language skills"},
	"achievements":   {"achievements", "accomplishments", "awards", "honors", "awards & honors"},
	"references":     {"references", "referees"},
}

// sectionMaxLen caps each accumulated section body, in characters.
var sectionMaxLen = map[string]int{
	"summary":        600,
	"experience":     1000,
	"education":      800,
	"skills":         500,
	"projects":       800,
	"certifications": 500,
	"languages":      500,
	"achievements":   500,
	"references":     500,
}

// extractSection finds the named section's body in the document lines.
// A header is a line that is exactly one of the section's keywords,
// optionally followed by a colon, case-insensitive. The body is every
// subsequent non-empty line up to the next header-looking line, joined
// with newlines, trimmed, and truncated to the section's cap.
func extractSection(lines []string, field string) string {
	for _, keyword := range sectionSynonyms[field] {
		if body := sectionBody(lines, keyword); body != "" {
			return truncate(body, sectionMaxLen[field])
		}
	}
	return ""
}

// sectionBody accumulates the body following the first header line that
// matches keyword. Blank lines inside the section are skipped, not
// terminating.
func sectionBody(lines []string, keyword string) string {
	for i, line := range lines {
		if !isHeaderLine(line, keyword) {
			continue
		}
		var body []string
		for _, next := range lines[i+1:] {
			trimmed := strings.TrimSpace(next)
			if trimmed == "" {
				continue
			}
			if looksLikeSectionHeader(trimmed) {
				break
			}
			body = append(body, trimmed)
		}
		return strings.TrimSpace(strings.Join(body, "\n"))
	}
	return ""
}

// isHeaderLine reports whether line is exactly keyword, optionally with a
// trailing colon, ignoring case and surrounding whitespace.
func isHeaderLine(line, keyword string) bool {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)
	return strings.EqualFold(trimmed, keyword)
}

// headerKeywords is the flat set of every section synonym, for the
// terminator check below.
var headerKeywords = func() map[string]bool {
	set := make(map[string]bool)
	for _, keywords := range sectionSynonyms {
		for _, keyword := range keywords {
			set[keyword] = true
		}
	}
	return set
}()

// looksLikeSectionHeader is the section terminator: a known section
// keyword (optionally with a colon), or a short all-caps line. Body lines
// in title case such as "Engineer at Acme" must not terminate a section.
func looksLikeSectionHeader(line string) bool {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	if line == "" || len(line) > 40 {
		return false
	}
	if headerKeywords[strings.ToLower(line)] {
		return true
	}
	return isAllCapsLine(line)
}

// isAllCapsLine reports whether line contains letters, none lowercase,
// and at most five words.
func isAllCapsLine(line string) bool {
	hasLetter := false
	for _, r := range line {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter && len(strings.Fields(line)) <= 5
}

// truncate cuts s to at most max characters, trimming any ragged edge.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}
