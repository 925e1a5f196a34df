package main

import "github.com/rskv-p/ptrie/cmd"

func main() {
	cmd.Execute()
}
