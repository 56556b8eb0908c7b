package main

import (
	"log"

	"github.com/covet-app/covet/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ covet failed to start: %v", err)
	}
}
