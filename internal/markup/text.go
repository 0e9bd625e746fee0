package markup

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// PlainText strips markup from content according to the file's extension:
// HTML tags are dropped (script and style content included), Markdown is
// reduced to its prose (code is dropped). Other content is returned as is.
func PlainText(path, content string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return htmlText(content)
	case ".md", ".markdown":
		return markdownText(content), nil
	default:
		return content, nil
	}
}

func htmlText(content string) (string, error) {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return b.String(), z.Err()
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawTextTag(string(name)) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawTextTag(string(name)) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}

func markdownText(content string) string {
	source := []byte(content)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		switch node := n.(type) {
		case *gmast.FencedCodeBlock, *gmast.CodeBlock, *gmast.CodeSpan,
			*gmast.HTMLBlock, *gmast.RawHTML, *gmast.AutoLink:
			return gmast.WalkSkipChildren, nil
		case *gmast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *gmast.String:
			if entering {
				b.Write(node.Value)
			}
		default:
			if !entering && n.Type() == gmast.TypeBlock {
				b.WriteByte('\n')
			}
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}
