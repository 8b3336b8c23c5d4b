package main

import "github.com/mandator-dev/mandator/internal/cli"

func main() {
	cli.Execute()
}
