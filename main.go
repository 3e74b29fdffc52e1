package main

import "github.com/notargets/ebdiffusion/cmd"

func main() {
	cmd.Execute()
}
