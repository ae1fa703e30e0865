// notesite HTTP server. All site branding and paths come from environment
// variables; the content directory is passed into the engine explicitly so
// nothing depends on the working directory at request time.
package main

import (
	"log"
	"os"

	"github.com/avello/notesite"
)

func main() {
	cfg := notesite.SiteConfig{
		Name:           notesite.EnvOr("SITE_NAME", "Android Engineering Notes"),
		URL:            notesite.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:    os.Getenv("SITE_DESCRIPTION"),
		Author:         os.Getenv("SITE_AUTHOR"),
		Addr:           notesite.EnvOr("ADDR", ":3000"),
		ContentDir:     notesite.EnvOr("CONTENT_DIR", "content/notes"),
		OGImageVersion: os.Getenv("OG_IMAGE_VERSION"),
		FontFamily:     notesite.EnvOr("OG_FONT_FAMILY", "Inter"),
	}

	app := notesite.New(cfg)
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
