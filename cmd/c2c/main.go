package main

import (
	"os"

	"github.com/ykawataki/c2c/internal/app"
	"github.com/ykawataki/c2c/internal/config"
)

func main() {
	// Load configuration from command-line flags
	cfg := config.New()

	// Create and run the application
	application := app.New(cfg)
	err := application.Run()

	// Close output file if one was opened
	if cfg.OutputFile != "" {
		if f, ok := application.Output.(*os.File); ok {
			f.Close()
		}
	}

	if err != nil {
		os.Exit(1)
	}
}
