package main

import (
	"fmt"
	"log"
	"os"

	"headings/config"
	"headings/preview"
	"headings/web"
	"headings/web/pages"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger.SetLogLevel(cfg.LogLevel)

	// `headings preview` prints the page to the terminal instead of serving it
	if len(os.Args) > 1 && os.Args[1] == "preview" {
		if err := printPreview(); err != nil {
			logger.LogErr(err, "preview failed")
			os.Exit(1)
		}
		return
	}

	srv := web.NewServer(cfg)
	log.Fatal(web.Run(srv, cfg))
}

func printPreview() error {
	frag, err := pages.HomePage.Fragment()
	if err != nil {
		return serr.Wrap(err, "failed to build home page")
	}
	fmt.Println(preview.Render(frag, preview.DefaultWidth))
	return nil
}
