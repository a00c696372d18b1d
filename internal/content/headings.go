package content

import (
	"fmt"
	"regexp"
	"strings"
)

// Heading is one table-of-contents entry, in document order.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	headingRe   = regexp.MustCompile(`(?is)<(h[23])>(.*?)</(h[23])>`)
	innerTagRe  = regexp.MustCompile(`<[^>]+>`)
	nonWordRe   = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	hyphenRunRe = regexp.MustCompile(`[-\s]+`)
)

// ExtractHeadings finds attribute-less <h2> and <h3> elements in rendered
// HTML, injects a slugified id attribute into each, and returns the rewritten
// HTML together with the collected entries. Repeated heading text yields
// repeated ids; anchors resolve to the first occurrence.
func ExtractHeadings(html string) (string, []Heading) {
	var toc []Heading
	out := headingRe.ReplaceAllStringFunc(html, func(m string) string {
		sub := headingRe.FindStringSubmatch(m)
		open, inner, closing := sub[1], sub[2], sub[3]
		if !strings.EqualFold(open, closing) {
			return m
		}
		text := strings.TrimSpace(innerTagRe.ReplaceAllString(inner, ""))
		id := HeadingID(text)
		level := 2
		if strings.EqualFold(open, "h3") {
			level = 3
		}
		toc = append(toc, Heading{ID: id, Text: text, Level: level})
		return fmt.Sprintf(`<%s id="%s">%s</%s>`, open, id, inner, open)
	})
	return out, toc
}

// HeadingID slugifies heading text into an anchor id: tags stripped,
// lowercased, punctuation removed, runs of spaces and hyphens collapsed
// into single hyphens.
func HeadingID(text string) string {
	clean := innerTagRe.ReplaceAllString(text, "")
	id := nonWordRe.ReplaceAllString(strings.ToLower(clean), "")
	id = hyphenRunRe.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}
