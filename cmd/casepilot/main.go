package main

import (
	"os"

	"github.com/casestudypilot/casepilot/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
