package main

import "github.com/pennyplot/pennyplot/cmd"

func main() {
	cmd.Execute()
}
