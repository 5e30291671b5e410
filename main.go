package main

import (
	"os"

	"lbprobe/cli"
)

func main() {
	os.Exit(cli.Start())
}
