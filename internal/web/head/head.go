// Package head rewrites the document head of the HTML shell with site metadata.
package head

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fields holds the metadata pushed into the head. Empty fields leave their element untouched.
type Fields struct {
	Title       string
	Description string
	Image       string
	OGTitle     string
	SiteName    string
	FaviconURL  string
}

// Patch parses shell, assigns every non-empty field to its head element and renders the result.
// Elements that are not present in the shell are skipped. The favicon link is removed and a
// fresh one appended whenever FaviconURL is set.
func Patch(shell []byte, f Fields) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(shell))
	if err != nil {
		return nil, errors.Wrap(err, "parse html shell")
	}

	headNode := findFirst(doc, atom.Head)
	if headNode == nil {
		return shell, nil
	}

	var icons []*html.Node

	for n := headNode.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}

		switch n.DataAtom {
		case atom.Title:
			if f.Title != "" {
				setText(n, f.Title)
			}
		case atom.Meta:
			patchMeta(n, f)
		case atom.Link:
			if isIcon(n) {
				icons = append(icons, n)
			}
		}
	}

	if f.FaviconURL != "" {
		for _, n := range icons {
			headNode.RemoveChild(n)
		}

		headNode.AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "link",
			DataAtom: atom.Link,
			Attr: []html.Attribute{
				{Key: "rel", Val: "icon"},
				{Key: "href", Val: f.FaviconURL},
			},
		})
	}

	var buf bytes.Buffer
	if err = html.Render(&buf, doc); err != nil {
		return nil, errors.Wrap(err, "render html shell")
	}

	return buf.Bytes(), nil
}

func patchMeta(n *html.Node, f Fields) {
	name := attr(n, "name")
	property := attr(n, "property")

	var value string

	switch {
	case name == "description":
		value = f.Description
	case property == "og:image", name == "twitter:image":
		value = f.Image
	case property == "og:title":
		value = f.OGTitle
	case property == "og:site_name":
		value = f.SiteName
	}

	if value != "" {
		setAttr(n, "content", value)
	}
}

func isIcon(n *html.Node) bool {
	for _, rel := range strings.Fields(strings.ToLower(attr(n, "rel"))) {
		if rel == "icon" {
			return true
		}
	}

	return false
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}

	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}

	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
