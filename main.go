package main

import (
	"os"

	"github.com/leonardinius/govalue/cmd"
)

func main() {
	app := cmd.NewValueApp()
	os.Exit(app.Main(os.Args[1:]))
}
