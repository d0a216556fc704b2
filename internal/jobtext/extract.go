// Package jobtext turns raw HTML job descriptions into cleaned text and the
// skill keywords they mention, so callers can feed real postings into the
// title matcher without doing their own scraping cleanup.
package jobtext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strippedSelectors are removed before text extraction; their content is
// chrome, not posting text.
var strippedSelectors = []string{"script", "style", "noscript", "nav", "header", "footer", "iframe"}

// ExtractText parses HTML and returns the cleaned visible text. Script,
// style, and navigation content is dropped; whitespace is normalized so the
// result reads as plain paragraphs.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	for _, selector := range strippedSelectors {
		doc.Find(selector).Remove()
	}

	var blocks []string
	doc.Find("body").Each(func(_ int, body *goquery.Selection) {
		blocks = append(blocks, blockText(body)...)
	})
	if len(blocks) == 0 {
		// Fragments without a body element still carry text.
		blocks = blockText(doc.Selection)
	}

	return CleanText(strings.Join(blocks, "\n")), nil
}

// blockText collects the text of block-level elements one per line, falling
// back to the selection's own text when it has no block children.
func blockText(sel *goquery.Selection) []string {
	var lines []string
	sel.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Filter("h1, h2, h3, h4, h5, h6, p, li, td, div").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	}
	return lines
}

var spaceRun = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes extracted text: CRLF to LF, runs of spaces to one
// space, at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// ExtractSkills returns which of the known skill keywords occur in the text,
// case-insensitively and on token boundaries, in the order of the known list.
// "java" does not match "javascript".
func ExtractSkills(text string, known []string) []string {
	if text == "" || len(known) == 0 {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make([]string, 0, len(known))
	seen := make(map[string]bool, len(known))
	for _, skill := range known {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			continue
		}
		if containsToken(lower, key) {
			seen[key] = true
			found = append(found, skill)
		}
	}
	return found
}

// containsToken reports whether needle occurs in haystack with non-word
// characters (or the string ends) on both sides. Both inputs are expected to
// be lowercased already.
func containsToken(haystack, needle string) bool {
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		idx += from
		before := idx == 0 || !isWordByte(haystack[idx-1])
		afterIdx := idx + len(needle)
		after := afterIdx >= len(haystack) || !isWordByte(haystack[afterIdx])
		if before && after {
			return true
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' ||
		b == '_' || b == '+' || b == '#'
}
