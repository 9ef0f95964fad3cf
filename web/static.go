package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// faviconSVG is served at /favicon.ico so no separate icon file is needed
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><rect width="100" height="100" rx="12" fill="#1d4ed8"/><text x="50" y="68" font-family="Arial,sans-serif" font-weight="900" font-size="56" fill="#b91c1c" text-anchor="middle">H</text></svg>`

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get static subdirectory"), "static files unavailable")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		path := strings.TrimPrefix(c.Request().Path(), "/static/")

		content, err := readStatic(staticFS, path)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if contentType := getContentType(path); contentType != "" {
			c.Response().SetHeader("Content-Type", contentType)
		}
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")

		return c.Bytes(content)
	})
}

// readStatic returns the bytes of a regular file in fsys.
// Directories are reported as not found.
func readStatic(fsys fs.FS, path string) ([]byte, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, serr.Wrap(err, "static file not found")
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, serr.Wrap(err, "failed to stat static file")
	}
	if stat.IsDir() {
		return nil, serr.New("static path is a directory")
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read static file")
	}
	return content, nil
}

// getContentType returns the content type based on file extension
func getContentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".css"):
		return "text/css"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	default:
		return ""
	}
}
