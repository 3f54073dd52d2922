package intake

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownToText parses markdown and flattens the document tree to plain
// text, with block boundaries becoming sentence/paragraph breaks
func markdownToText(source []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	)
	doc := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Separate block-level nodes so headings and paragraphs do
			// not run together
			switch n.(type) {
			case *ast.Heading, *ast.Paragraph, *ast.ListItem:
				b.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.AutoLink:
			b.Write(node.URL(source))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(b.String()), nil
}
