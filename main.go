package main

import (
	"os"

	"github.com/vidnest/vidnest/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
