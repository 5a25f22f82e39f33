package main

import "github.com/mouse-blink/morph/internal/cli"

func main() {
	cli.Execute()
}
