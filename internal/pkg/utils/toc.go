package utils

import (
	"medicenter-service/internal/pkg/dto/responses"
	"regexp"
	"strings"
)

var (
	htmlHeadingRe     = regexp.MustCompile(`(?is)<h([1-3])[^>]*>(.*?)</h[1-3]>`)
	markdownHeadingRe = regexp.MustCompile(`(?m)^(#{1,3})\s+(.+?)\s*$`)
	htmlTagRe         = regexp.MustCompile(`<[^>]+>`)
	nonSlugRe         = regexp.MustCompile(`[^a-z0-9]+`)
)

// ExtractTOC derives a table of contents from the heading elements of a blog
// post body. Both HTML h1-h3 tags and markdown-style # headings are
// recognized since the upstream stores either.
func ExtractTOC(body string) []responses.TOCEntry {
	var toc []responses.TOCEntry

	for _, match := range htmlHeadingRe.FindAllStringSubmatch(body, -1) {
		level := int(match[1][0] - '0')
		text := strings.TrimSpace(htmlTagRe.ReplaceAllString(match[2], ""))
		if text == "" {
			continue
		}
		toc = append(toc, responses.TOCEntry{Level: level, Text: text, Slug: slugify(text)})
	}

	if len(toc) > 0 {
		return toc
	}

	for _, match := range markdownHeadingRe.FindAllStringSubmatch(body, -1) {
		text := strings.TrimSpace(match[2])
		if text == "" {
			continue
		}
		toc = append(toc, responses.TOCEntry{Level: len(match[1]), Text: text, Slug: slugify(text)})
	}

	return toc
}

func slugify(text string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
