package main

import (
	"os"

	"github.com/streambinder/ytfetch/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
