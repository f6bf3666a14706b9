package main

import "github.com/gaurav-prasanna/nkpipe/cmd"

func main() {
	cmd.Execute()
}
