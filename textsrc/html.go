package textsrc

import (
	"fmt"
	"io"

	"github.com/npillmayer/enumerate/source"
	"golang.org/x/net/html"
)

// HTMLText creates an enumerator over the text nodes of an HTML fragment, in
// document order. It does no interpretation of layout and styling, and text
// nodes consisting of white space only are skipped.
func HTMLText(input io.Reader) (*source.Slice[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTML, err)
	}
	var texts []string
	for _, n := range nodes {
		texts = collectText(n, texts)
	}
	tracer().Debugf("html: collected %d text nodes", len(texts))
	return source.FromSlice(texts), nil
}

func collectText(n *html.Node, texts []string) []string {
	if n.Type == html.TextNode && !isSpace(n.Data) {
		texts = append(texts, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		texts = collectText(c, texts)
	}
	return texts
}

func isSpace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
