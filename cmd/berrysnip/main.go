package main

import (
	"os"

	"github.com/cashmeredev/berrysnip/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
