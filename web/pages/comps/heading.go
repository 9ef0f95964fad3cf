package comps

import (
	"headings/web/pages/shared"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
)

// HeadingText is the same for every variant; only the styling differs.
const HeadingText = "Heading"

// Heading is a top-level title coloured by its variant
type Heading struct {
	Colour ColorVariant
}

// Node builds the h1 for this heading.
// On an invalid colour it returns the zero Node so nothing partial gets rendered.
func (h Heading) Node() (shared.Node, error) {
	classes, err := Compose(h.Colour)
	if err != nil {
		return shared.Node{}, err
	}
	return shared.Node{Tag: shared.TagH1, Class: classes, Text: HeadingText}, nil
}

// Render implements element.Component.
// The error from an invalid colour is logged and handed back as the return value.
func (h Heading) Render(b *element.Builder) (x any) {
	node, err := h.Node()
	if err != nil {
		logger.LogErr(err, "cannot render heading", "colour", h.Colour.String())
		return err
	}
	return node.Render(b)
}

// HeadingNode is shorthand for Heading{Colour: v}.Node()
func HeadingNode(v ColorVariant) (shared.Node, error) {
	return Heading{Colour: v}.Node()
}
