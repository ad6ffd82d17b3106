package main

import (
	"os"

	"github.com/hestia-ai/hestia/cmd/hestia"
)

func main() {
	if err := hestia.Execute(); err != nil {
		os.Exit(1)
	}
}
