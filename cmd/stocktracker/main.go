package main

import (
	"stocktracker/internal/cli"
)

func main() {
	cli.Execute()
}
