// Package shared contains the building blocks used by every page:
// the markup node tree and the document shell around it.
package shared

import "github.com/rohanthewiz/element"

// Page is embedded by concrete pages to give them a titled document shell.
//
//	type Home struct {
//		shared.Page
//	}
type Page struct {
	Title      string
	Stylesheet string // href of the utility stylesheet, optional
}

// Document wraps body in html, head and body tags.
// The body content itself is rendered without any extra wrapper.
func (p Page) Document(body element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(p.Title),
			b.Wrap(func() {
				if p.Stylesheet != "" {
					b.Link("rel", "stylesheet", "href", p.Stylesheet)
				}
			}),
		),
		b.Body().R(
			element.RenderComponents(b, body),
		),
	)

	return b.String()
}
