// internal/markdown/markdown.go
//
// Package markdown strips formatting markers from model output before it
// reaches the terminal. The model is asked not to emit markdown, but small
// local models do it anyway; a strip is cheaper than a renderer.
package markdown

import "regexp"

var (
	bold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldAlt    = regexp.MustCompile(`__([^_]+)__`)
	italic     = regexp.MustCompile(`\*([^*]+)\*`)
	italicAlt  = regexp.MustCompile(`_([^_]+)_`)
	heading    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	codeBlock  = regexp.MustCompile("```[^`]*```")
	inlineCode = regexp.MustCompile("`([^`]+)`")
)

// Clean removes bold, italic, heading, and code markers, keeping the text
// they wrap. Fenced code blocks are dropped entirely.
func Clean(text string) string {
	// Fences go first so markers inside them never leak into the
	// emphasis passes.
	text = codeBlock.ReplaceAllString(text, "")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = bold.ReplaceAllString(text, "$1")
	text = boldAlt.ReplaceAllString(text, "$1")
	text = italic.ReplaceAllString(text, "$1")
	text = italicAlt.ReplaceAllString(text, "$1")
	text = heading.ReplaceAllString(text, "")
	return text
}
