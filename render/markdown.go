package render

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown converts model output from markdown into an HTML fragment for the
// results view. Parsers are single-use, so each call builds a fresh one.
func Markdown(text string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.UseXHTML})
	return string(markdown.ToHTML([]byte(text), p, renderer))
}
