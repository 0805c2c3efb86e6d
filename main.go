package main

import (
	"os"

	"github.com/qrkitchen/qr-kitchen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
