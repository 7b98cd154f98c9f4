package main

import (
	"os"

	"basicsort/src/cmd"
	"basicsort/src/utils"
)

var logger = utils.GetLogger("basicsort")

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
