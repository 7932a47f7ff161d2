package main

import "github.com/notargets/gofv1d/cmd"

func main() {
	cmd.Execute()
}
