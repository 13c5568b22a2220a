package adapter

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attributes wraps the attribute list of a node so it can be edited in place.
type attributes struct {
	node *html.Node
}

func attrs(n *html.Node) attributes {
	return attributes{node: n}
}

func (a attributes) attribute(name string) *html.Attribute {
	for i := range a.node.Attr {
		if a.node.Attr[i].Namespace == "" && a.node.Attr[i].Key == name {
			return &a.node.Attr[i]
		}
	}

	return nil
}

func (a attributes) get(name string) string {
	if attr := a.attribute(name); attr != nil {
		return attr.Val
	}

	return ""
}

func (a attributes) lookup(name string) (string, bool) {
	if attr := a.attribute(name); attr != nil {
		return attr.Val, true
	}

	return "", false
}

func (a attributes) has(name string) bool {
	return a.attribute(name) != nil
}

func (a attributes) set(name, value string) {
	if attr := a.attribute(name); attr != nil {
		attr.Val = value
		return
	}

	a.node.Attr = append(a.node.Attr, html.Attribute{Key: name, Val: value})
}

func (a attributes) remove(name string) {
	kept := a.node.Attr[:0]

	for _, attr := range a.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}

		kept = append(kept, attr)
	}

	a.node.Attr = kept
}

func (a attributes) classes() []string {
	return strings.Fields(a.get("class"))
}

func (a attributes) hasClass(name string) bool {
	for _, class := range a.classes() {
		if class == name {
			return true
		}
	}

	return false
}

func (a attributes) addClass(name string) {
	if a.hasClass(name) {
		return
	}

	a.set("class", strings.Join(append(a.classes(), name), " "))
}

func (a attributes) removeClass(name string) {
	if !a.hasClass(name) {
		return
	}

	classes := a.classes()
	kept := classes[:0]

	for _, class := range classes {
		if class != name {
			kept = append(kept, class)
		}
	}

	if len(kept) == 0 {
		a.remove("class")
		return
	}

	a.set("class", strings.Join(kept, " "))
}

// textContent concatenates the text below n.
func textContent(n *html.Node) string {
	var b strings.Builder

	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})

	return b.String()
}

func setTextContent(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}

	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}
