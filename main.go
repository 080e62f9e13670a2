package main

import (
	"github.com/labpod/labpod/cmd"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.ExecuteCLI(version, commit, date)
}
