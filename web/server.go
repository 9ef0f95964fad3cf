package web

import (
	"headings/config"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg *config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.Verbose,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)
	s.Use(RequestIDMiddleware)
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	setupRoutes(s)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg *config.Config) error {
	logger.Info("Headings server starting on", "address", cfg.Address)
	return s.Run()
}
