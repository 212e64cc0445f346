package extract

import (
	"regexp"
	"strings"
)

// nameScanLines bounds how deep into the document the name search looks.
const nameScanLines = 7

// namePatterns are tried in priority order against each candidate line.
// The first pattern that matches wins.
var namePatterns = []*regexp.Regexp{
	// Title-cased sequence with an optional middle initial: "John A. Smith"
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+(?:[A-Z]\.?|[A-Z][a-z]+)){1,3})$`),
	// All-caps header style: "JOHN SMITH"
	regexp.MustCompile(`^([A-Z]{2,}(?:\s+[A-Z]\.?)?(?:\s+[A-Z]{2,}){1,3})$`),
	// Hyphenated or apostrophe surnames: "Mary Smith-Jones", "Sean O'Brien"
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-zA-Z'-]+){1,3})$`),
}

var (
	nameRejectRe = regexp.MustCompile(`(?i)https?://|www\.|\bresume\b|\bcv\b|\bcurriculum\b`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	phoneLabelRe = regexp.MustCompile(`(?i)^(?:phone|tel|telephone|mobile|cell)\s*:?\s*`)
	digitRe      = regexp.MustCompile(`\d`)

	urlTokenRe  = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"')]+`)
	linkedInRe  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_%.-]+/?`)
	httpPrefixRe = regexp.MustCompile(`(?i)^https?://`)
)

// phonePatterns are pattern families tried in priority order. The first
// family that produces a qualifying match (10+ digits) wins; within that
// family the longest qualifying match is kept.
var phonePatterns = []*regexp.Regexp{
	// North-American: (415) 555-0199, 415-555-0199, +1 415.555.0199
	regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	// Generic international digit grouping: +44 20 7946 0958
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?(?:[-.\s]\d{2,4}){2,4}`),
	// Explicitly labeled numbers
	regexp.MustCompile(`(?i)(?:phone|tel|telephone|mobile|cell)\s*:?\s*\+?[\d\s().-]{7,}\d`),
	// Bare international with + prefix
	regexp.MustCompile(`\+\d[\d\s().-]{8,}\d`),
}

// locationPatterns are tried in priority order over the whole text.
var locationPatterns = []*regexp.Regexp{
	// City, ST
	regexp.MustCompile(`\b[A-Z][a-zA-Z .'-]+,\s*[A-Z]{2}\b`),
	// City, ST ZIP
	regexp.MustCompile(`\b[A-Z][a-zA-Z .'-]+,\s*[A-Z]{2}\s+\d{5}(?:-\d{4})?\b`),
	// City, Country
	regexp.MustCompile(`\b[A-Z][a-zA-Z .'-]+,\s*[A-Z][a-zA-Z .'-]+\b`),
}

var locationLabelRe = regexp.MustCompile(`(?im)^(?:location|address|based in|lives in)\s*:?\s*(.+)$`)

// extractName scans the first few non-empty lines for something shaped
// like a person's name. Lines carrying contact details, URLs, document
// titles, leading digits, pipes, or too much text are rejected outright.
func extractName(lines []string) string {
	scanned := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > nameScanLines {
			break
		}
		if rejectNameLine(line) {
			continue
		}
		for _, pattern := range namePatterns {
			if m := pattern.FindStringSubmatch(line); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
	}
	return ""
}

func rejectNameLine(line string) bool {
	if len(line) > 60 {
		return true
	}
	if strings.ContainsAny(line, "@|") {
		return true
	}
	if line[0] >= '0' && line[0] <= '9' {
		return true
	}
	return nameRejectRe.MatchString(line)
}

// extractEmail returns the first email-shaped token in the text.
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone walks the phone pattern families in priority order. The
// first family with a match carrying at least 10 digits wins; among its
// matches the longest qualifying one is kept, with any leading label
// ("Phone:", "Mobile:") stripped.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		best := ""
		for _, match := range pattern.FindAllString(text, -1) {
			candidate := strings.TrimSpace(phoneLabelRe.ReplaceAllString(strings.TrimSpace(match), ""))
			if len(digitRe.FindAllString(candidate, -1)) < 10 {
				continue
			}
			if len(candidate) > len(best) {
				best = candidate
			}
		}
		if best != "" {
			return best
		}
	}
	return ""
}

// extractLocation tries City/State, City/State ZIP, City/Country and
// labeled patterns in order, accepting the first match longer than three
// characters that contains a comma.
func extractLocation(text string) string {
	for _, pattern := range locationPatterns {
		if m := strings.TrimSpace(pattern.FindString(text)); acceptLocation(m) {
			return m
		}
	}
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		if candidate := strings.TrimSpace(m[1]); acceptLocation(candidate) {
			return candidate
		}
	}
	return ""
}

func acceptLocation(candidate string) bool {
	return len(candidate) > 3 && strings.Contains(candidate, ",")
}

// extractWebsite returns the first bare URL that is neither an email nor a
// LinkedIn profile, normalized to carry an https:// prefix.
func extractWebsite(text string) string {
	for _, token := range urlTokenRe.FindAllString(text, -1) {
		if strings.Contains(token, "@") || strings.Contains(strings.ToLower(token), "linkedin") {
			continue
		}
		return normalizeURL(token)
	}
	return ""
}

// extractLinkedIn returns the first linkedin.com/in/<slug> token,
// normalized the same way.
func extractLinkedIn(text string) string {
	token := linkedInRe.FindString(text)
	if token == "" {
		return ""
	}
	return normalizeURL(strings.TrimSuffix(token, "/"))
}

func normalizeURL(token string) string {
	token = strings.TrimRight(token, ".,;")
	if httpPrefixRe.MatchString(token) {
		return token
	}
	return "https://" + token
}
