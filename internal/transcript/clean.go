package transcript

import (
	"regexp"
	"strings"
)

var (
	markupTagPattern     = regexp.MustCompile(`<[^>]+>`)
	leadingIndexPattern  = regexp.MustCompile(`^\d+\s*`)
	musicNotePattern     = regexp.MustCompile(`♪.*?♪`)
	bracketedPattern     = regexp.MustCompile(`\[.*?\]`)
	parentheticalPattern = regexp.MustCompile(`\(.*?\)`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// CleanText normalizes raw subtitle text: markup tags and HTML entities are
// resolved, music-note spans and bracketed/parenthetical sound annotations
// are removed, and whitespace is collapsed. Entity unescape and annotation
// removal run before the final whitespace collapse so their leftover gaps
// are folded too. The transform is idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = markupTagPattern.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)

	text = leadingIndexPattern.ReplaceAllString(text, "")
	text = musicNotePattern.ReplaceAllString(text, "")
	text = bracketedPattern.ReplaceAllString(text, "")
	text = parentheticalPattern.ReplaceAllString(text, "")

	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
