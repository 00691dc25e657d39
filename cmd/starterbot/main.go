package main

import (
	"log/slog"
	"os"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/starterbot
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("starterbot exited with error", "error", err)
		os.Exit(1)
	}
}
