// Command blog runs the blog HTTP service. Configuration comes from the
// environment, see app.LoadConfig.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/blog/internal/blog/app"
)

func main() {
	if err := run(); err != nil {
		slog.Error("blog service exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	blog, err := app.New(app.LoadConfig())
	if err != nil {
		return fmt.Errorf("start blog service: %w", err)
	}
	return blog.Run()
}
