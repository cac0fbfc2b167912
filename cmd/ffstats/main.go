package main

import "github.com/pfrederiksen/ffstats/internal/cli"

func main() {
	cli.Execute()
}
