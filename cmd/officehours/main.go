package main

import (
	"os"

	"github.com/officehours/officehours/app"
	"github.com/officehours/officehours/internal/ui"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		ui.Quit(err)
	}
}
