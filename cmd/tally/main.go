package main

import "github.com/aalvaropc/tally/internal/cli"

func main() {
	cli.Execute()
}
