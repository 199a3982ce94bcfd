package main

import (
	"embed"

	"github.com/dgarcia1724/prestige-finance/cmd"
)

//go:embed seed migrations
var assetsFS embed.FS

func main() {
	cmd.Execute(assetsFS)
}
