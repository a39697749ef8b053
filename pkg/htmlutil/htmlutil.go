package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selection is the minimal "parse tree + selector" capability the scrapers
// need, it keeps the page parsers independent of any specific DOM library.
type Selection interface {
	// Find returns the descendants matching a css selector.
	Find(selector string) Selection
	First() Selection
	// Eq returns the i-th element of the selection, an empty selection if
	// i is out of range.
	Eq(i int) Selection
	Len() int
	Each(fn func(i int, s Selection))
	// Text returns the combined text contents of every element.
	Text() string
	Attr(name string) (string, bool)
}

// Parse parses an html document or fragment.
func Parse(body []byte) (Selection, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return goquerySelection{sel: doc.Selection}, nil
}

type goquerySelection struct {
	sel *goquery.Selection
}

func (s goquerySelection) Find(selector string) Selection {
	return goquerySelection{sel: s.sel.Find(selector)}
}

func (s goquerySelection) First() Selection {
	return goquerySelection{sel: s.sel.First()}
}

func (s goquerySelection) Eq(i int) Selection {
	if i < 0 || i >= s.sel.Length() {
		return goquerySelection{sel: s.sel.Slice(0, 0)}
	}
	return goquerySelection{sel: s.sel.Eq(i)}
}

func (s goquerySelection) Len() int {
	return s.sel.Length()
}

func (s goquerySelection) Each(fn func(i int, s Selection)) {
	s.sel.Each(func(i int, child *goquery.Selection) {
		fn(i, goquerySelection{sel: child})
	})
}

func (s goquerySelection) Text() string {
	var b strings.Builder
	for _, node := range s.sel.Nodes {
		writeText(&b, node)
	}
	return b.String()
}

func (s goquerySelection) Attr(name string) (string, bool) {
	return s.sel.Attr(name)
}

// writeText appends the text nodes under node in document order. Comments
// and the contents of script and style elements are not text.
func writeText(b *strings.Builder, node *html.Node) {
	stack := []*html.Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			continue
		case html.CommentNode:
			continue
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				continue
			}
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CollapseWhitespace drops non-printable characters, trims the ends and
// collapses runs of whitespace into a single space.
func CollapseWhitespace(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	s = strings.TrimSpace(s)
	return innerWhitespace.ReplaceAllString(s, " ")
}
