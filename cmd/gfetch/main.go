package main

import (
	"os"

	"github.com/andyle182810/gfetch/internal/cli"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	os.Exit(cli.Execute())
}
