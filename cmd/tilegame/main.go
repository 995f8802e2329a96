package main

import "github.com/mcoot/tilegame-go/internal/cli"

func main() {
	cli.Execute()
}
