package core

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindContainer Kind = iota
	KindOutlet
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindOutlet:
		return "outlet"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one element of a rendered view tree.
type Node struct {
	Kind     Kind
	Name     string
	Class    string
	Text     string
	Children []Node
}

// Walk visits n and its descendants depth-first. Returning false from fn stops
// descent into that node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func (n Node) Outlets() []Node {
	var out []Node
	n.Walk(func(x Node) bool {
		if x.Kind == KindOutlet {
			out = append(out, x)
		}
		return true
	})
	return out
}

func (n Node) Equal(o Node) bool {
	if n.Kind != o.Kind || n.Name != o.Name || n.Class != o.Class || n.Text != o.Text {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree as markup, e.g. <ca-root class="app"><router-outlet/></ca-root>.
func (n Node) String() string {
	var b strings.Builder
	n.writeMarkup(&b)
	return b.String()
}

func (n Node) writeMarkup(b *strings.Builder) {
	if n.Kind == KindText {
		b.WriteString(n.Text)
		return
	}
	b.WriteString("<" + n.Name)
	if n.Class != "" {
		fmt.Fprintf(b, " class=%q", n.Class)
	}
	if len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for _, c := range n.Children {
		c.writeMarkup(b)
	}
	b.WriteString("</" + n.Name + ">")
}
