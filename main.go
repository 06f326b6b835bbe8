package main

import "go.creack.net/pcalc/cli"

func main() {
	cli.Execute()
}
