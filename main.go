package main

import (
	"genomepull/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
