// Package xmltree decodes an XML document into a generic, order-preserving
// element tree. Both the MIG and AHB loaders need this: their schemas name
// elements dynamically (S_NAD, G_SG4, D_3039, ...) so a fixed set of struct
// tags can't describe them — only the sigil prefix (M_/G_/S_/C_/D_/Code) is
// known ahead of time. Token-based decoding also makes self-closing
// (<S_XXX/>) and explicit (<S_XXX>...</S_XXX>) element forms indistinguishable
// by construction: encoding/xml's tokenizer emits the same
// StartElement/EndElement pair either way.
package xmltree

import (
	"encoding/xml"
	"io"
)

// Node is one element of the decoded tree: its local name (namespace
// prefixes are dropped, matching how MIG/AHB schemas are authored),
// attributes by local name, and ordered child elements.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the named attribute's value and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// ChildrenNamed returns n's direct children whose local name equals name.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Decode reads a full XML document from r and returns its root Node.
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var stack []*Node
	var root *Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	return root, nil
}

// Walk calls fn for n and every descendant, depth-first, pre-order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
