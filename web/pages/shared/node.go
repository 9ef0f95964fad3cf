package shared

import (
	"github.com/rohanthewiz/element"
)

// Tag is the element name of a Node. Only the tags the pages
// actually emit are supported.
type Tag string

const (
	TagH1  Tag = "h1"
	TagDiv Tag = "div"
)

// Node is one element of a rendered page.
// It is built fresh for each render and never mutated afterwards.
// The struct tags let the API hand the same tree out as JSON or msgpack.
type Node struct {
	Tag      Tag    `json:"tag" msgpack:"tag"`
	Class    string `json:"class,omitempty" msgpack:"class,omitempty"`
	Text     string `json:"text,omitempty" msgpack:"text,omitempty"`
	Children []Node `json:"children,omitempty" msgpack:"children,omitempty"`
}

// Render implements element.Component
func (n Node) Render(b *element.Builder) (x any) {
	var attrs []string
	if n.Class != "" {
		attrs = append(attrs, "class", n.Class)
	}

	switch n.Tag {
	case TagH1:
		b.H1(attrs...).R(n.renderInner(b))
	case TagDiv:
		b.Div(attrs...).R(n.renderInner(b))
	}
	return
}

// renderInner writes text and children between the open and close tags.
func (n Node) renderInner(b *element.Builder) (x any) {
	if n.Text != "" {
		b.T(n.Text)
	}
	element.RenderComponents(b, componentsOf(n.Children)...)
	return
}

// Fragment is a list of sibling nodes rendered with no wrapping element.
type Fragment struct {
	Children []Node `json:"children" msgpack:"children"`
}

// Render implements element.Component
func (f Fragment) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, componentsOf(f.Children)...)
	return
}

// String renders the fragment on its own builder.
func (f Fragment) String() string {
	b := element.NewBuilder()
	f.Render(b)
	return b.String()
}

func componentsOf(nodes []Node) []element.Component {
	comps := make([]element.Component, 0, len(nodes))
	for _, n := range nodes {
		comps = append(comps, n)
	}
	return comps
}
