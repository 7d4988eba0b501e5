package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts markdown source to an HTML fragment.
func RenderHTML(src []byte, w io.Writer) error {
	return markdown.Convert(src, w)
}

// HeadingTitle returns the text of the shallowest heading in src, preferring
// the first one at that depth. It returns "" when src has no headings.
func HeadingTitle(src []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(src))

	title := ""
	best := 7
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level >= best {
			continue
		}
		if t := extractText(h, src); t != "" {
			title = t
			best = h.Level
		}
	}
	return title
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			// Recurse for nested inlines.
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
