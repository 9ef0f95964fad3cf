package web

import (
	"net/http"

	"headings/web/api"
	"headings/web/pages"
	"headings/web/pages/comps"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server) {
	// Page routes - HTML responses
	s.Get("/", func(ctx rweb.Context) error {
		html, err := pages.HomePage.Render()
		if err != nil {
			logger.LogErr(err, "home page render failed")
			ctx.SetStatus(http.StatusInternalServerError)
			return nil
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(html)
	})

	// Single heading partial, for swapping a heading in place
	s.Get("/partials/heading/:colour", headingPartial)

	// API v1 routes - JSON (or msgpack) responses
	s.Get("/api/v1/page", api.GetPage)
	s.Get("/api/v1/classes/:colour", api.GetClasses)
}

// headingPartial handles GET /partials/heading/:colour
func headingPartial(ctx rweb.Context) error {
	colour, err := comps.ParseColorVariant(ctx.Request().Param("colour"))
	if err != nil {
		ctx.SetStatus(http.StatusBadRequest)
		return ctx.WriteHTML(err.Error())
	}

	node, err := comps.HeadingNode(colour)
	if err != nil {
		ctx.SetStatus(http.StatusBadRequest)
		return ctx.WriteHTML(err.Error())
	}

	b := element.NewBuilder()
	node.Render(b)

	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(b.String())
}
