package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/kennyg/vellum/cmd"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), cmd.Root(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
