package main

import "github.com/jlevert/bouquin/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
