package main

import "github.com/edicola-dev/edicola/cmd"

func main() {
	cmd.Execute()
}
