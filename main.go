package main

import "diporani_web/internals/cli"

func main() {
	cli.Execute()
}
