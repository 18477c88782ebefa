package main

import (
	"os"

	gdsp "github.com/gdsp-engine/gdsp/src"
)

func main() {
	os.Exit(gdsp.QamtestMain())
}
