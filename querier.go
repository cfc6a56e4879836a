package adyen_soap_recurring

import (
	"strings"

	"github.com/beevik/etree"
)

// xmlNode answers namespaced path queries against a reply document.
//
// Paths are a small XPath subset: "//a/b" searches the whole document for a
// and then its b children, "./a/b" walks children of the node and ".//a" searches
// its descendants. Steps are "prefix:local"; prefixes resolve through
// namespacePrefixes, so a reply may use any prefix of its own for the same URI.
// The zero xmlNode matches nothing.
type xmlNode struct {
	el *etree.Element
}

// newXMLQuerier parses a reply. A reply that does not parse yields an empty
// querier, so every lookup resolves to nothing.
func newXMLQuerier(data []byte) xmlNode {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return xmlNode{}
	}
	return xmlNode{el: &doc.Element}
}

// Text returns the text of the first node at path, or "" when there is none.
func (n xmlNode) Text(path string) string {
	nodes := n.XPath(path)
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].text()
}

// First returns the first node at path.
func (n xmlNode) First(path string) (xmlNode, bool) {
	nodes := n.XPath(path)
	if len(nodes) == 0 {
		return xmlNode{}, false
	}
	return nodes[0], true
}

// XPath returns all nodes at path in document order.
func (n xmlNode) XPath(path string) []xmlNode {
	if n.el == nil {
		return nil
	}

	var (
		current = []*etree.Element{n.el}
		deep    bool
	)
	switch {
	case strings.HasPrefix(path, "//"):
		current = []*etree.Element{documentOf(n.el)}
		deep, path = true, path[2:]
	case strings.HasPrefix(path, ".//"):
		deep, path = true, path[3:]
	case strings.HasPrefix(path, "./"):
		path = path[2:]
	}

	for i, step := range strings.Split(path, "/") {
		uri, local, ok := resolveStep(step)
		if !ok {
			return nil
		}
		var next []*etree.Element
		for _, el := range current {
			if i == 0 && deep {
				next = appendDescendants(next, el, uri, local)
			} else {
				next = appendChildren(next, el, uri, local)
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}

	nodes := make([]xmlNode, len(current))
	for i, el := range current {
		nodes[i] = xmlNode{el: el}
	}
	return nodes
}

// Empty reports whether the node is missing or has neither child elements nor text.
func (n xmlNode) Empty() bool {
	if n.el == nil {
		return true
	}
	if len(n.el.ChildElements()) > 0 {
		return false
	}
	return strings.TrimSpace(n.el.Text()) == ""
}

func (n xmlNode) text() string {
	if n.el == nil {
		return ""
	}
	return n.el.Text()
}

func resolveStep(step string) (uri, local string, ok bool) {
	prefix, local, found := strings.Cut(step, ":")
	if !found {
		return "", step, step != ""
	}
	uri, ok = namespacePrefixes[prefix]
	return uri, local, ok && local != ""
}

func matches(el *etree.Element, uri, local string) bool {
	return el.Tag == local && el.NamespaceURI() == uri
}

func appendChildren(dst []*etree.Element, parent *etree.Element, uri, local string) []*etree.Element {
	for _, c := range parent.ChildElements() {
		if matches(c, uri, local) {
			dst = append(dst, c)
		}
	}
	return dst
}

func appendDescendants(dst []*etree.Element, parent *etree.Element, uri, local string) []*etree.Element {
	for _, c := range parent.ChildElements() {
		if matches(c, uri, local) {
			dst = append(dst, c)
		}
		dst = appendDescendants(dst, c, uri, local)
	}
	return dst
}

func documentOf(el *etree.Element) *etree.Element {
	for el.Parent() != nil {
		el = el.Parent()
	}
	return el
}
