package main

import (
	"os"

	"tgsetup/internal/bootstrap"
)

func main() {
	os.Exit(bootstrap.Main())
}
