// Package pages contains the page components for the application.
package pages

import (
	"headings/web/pages/comps"
	"headings/web/pages/shared"

	"github.com/rohanthewiz/serr"
)

// DecorClasses is assigned as is to the empty container under the headings.
const DecorClasses = "absolute top-1 mt-5 px-3"

// HomePage is the page served at "/"
var HomePage = Home{
	Page: shared.Page{
		Title:      "Headings",
		Stylesheet: "/static/css/app.css",
	},
}

// Home shows a red heading, a blue heading and an empty decorative container.
type Home struct {
	shared.Page
}

// Fragment returns the three page children in fixed order.
// If any heading fails nothing is returned.
func (h Home) Fragment() (shared.Fragment, error) {
	red, err := comps.HeadingNode(comps.Red)
	if err != nil {
		return shared.Fragment{}, err
	}

	blue, err := comps.HeadingNode(comps.Blue)
	if err != nil {
		return shared.Fragment{}, err
	}

	return shared.Fragment{
		Children: []shared.Node{
			red,
			blue,
			{Tag: shared.TagDiv, Class: DecorClasses},
		},
	}, nil
}

// Render returns the complete HTML document for the page
func (h Home) Render() (out string, err error) {
	frag, err := h.Fragment()
	if err != nil {
		return "", serr.Wrap(err, "failed to build home page")
	}
	return h.Document(frag), nil
}
