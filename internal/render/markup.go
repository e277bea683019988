package render

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	htmlTagRegex         = regexp.MustCompile(`<[a-zA-Z!/][^>]*>`)
	imageRegex           = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRegex            = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	boldAsterisksRegex   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicAsterisksRegex = regexp.MustCompile(`\*([^*]+)\*`)
	boldUnderscoreRegex  = regexp.MustCompile(`__([^_]+)__`)
	headersRegex         = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquoteRegex      = regexp.MustCompile(`(?m)^>\s+`)
	unorderedListRegex   = regexp.MustCompile(`(?m)^[\s]*[\-*+]\s+`)
	blankLinesRegex      = regexp.MustCompile(`\n{3,}`)
)

// PlainText turns a manifest description into terminal-friendly text.
// Descriptions containing HTML markup are converted to Markdown first and
// then stripped of Markdown syntax; anything else is returned trimmed.
func PlainText(description string) string {
	text := strings.TrimSpace(description)
	if text == "" || !htmlTagRegex.MatchString(text) {
		return text
	}

	markdown, err := md.ConvertString(text)
	if err != nil {
		return text
	}
	return stripMarkdown(markdown)
}

func stripMarkdown(markdown string) string {
	markdown = imageRegex.ReplaceAllString(markdown, "$1")
	markdown = linkRegex.ReplaceAllString(markdown, "$1")
	markdown = boldAsterisksRegex.ReplaceAllString(markdown, "$1")
	markdown = italicAsterisksRegex.ReplaceAllString(markdown, "$1")
	markdown = boldUnderscoreRegex.ReplaceAllString(markdown, "$1")
	markdown = headersRegex.ReplaceAllString(markdown, "")
	markdown = blockquoteRegex.ReplaceAllString(markdown, "")
	markdown = unorderedListRegex.ReplaceAllString(markdown, "• ")
	markdown = blankLinesRegex.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
