package api

import (
	"net/http"
	"strings"

	"headings/web/pages"
	"headings/web/pages/comps"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackContentType is accepted on /api/v1/page for a binary tree
const MsgPackContentType = "application/msgpack"

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ClassesResponse is the payload of GET /api/v1/classes/:colour
type ClassesResponse struct {
	Variant string `json:"variant"`
	Classes string `json:"classes"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// GetClasses handles GET /api/v1/classes/:colour
// An unknown colour is a client error and answers 400.
func GetClasses(ctx rweb.Context) error {
	colour, err := comps.ParseColorVariant(ctx.Request().Param("colour"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	classes, err := comps.Compose(colour)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	return writeSuccess(ctx, http.StatusOK, ClassesResponse{
		Variant: colour.String(),
		Classes: classes,
	})
}

// GetPage handles GET /api/v1/page
// Returns the home page fragment as a node tree. Clients sending
// Accept: application/msgpack get the raw msgpack encoding instead of JSON.
func GetPage(ctx rweb.Context) error {
	frag, err := pages.HomePage.Fragment()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to build page fragment"), "render error")
		return writeError(ctx, http.StatusInternalServerError, "failed to render page")
	}

	if !acceptsMsgPack(ctx.Request().Header("Accept")) {
		return writeSuccess(ctx, http.StatusOK, frag)
	}

	data, err := msgpack.Marshal(frag)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to msgpack encode page"), "encoding error")
		return writeError(ctx, http.StatusInternalServerError, "failed to encode page")
	}

	ctx.Response().SetHeader("Content-Type", MsgPackContentType)
	return ctx.Bytes(data)
}

func acceptsMsgPack(accept string) bool {
	return strings.Contains(accept, MsgPackContentType)
}
