package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/alertkit/internal/ui"
)

func main() {
	if err := ui.NewApp().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
