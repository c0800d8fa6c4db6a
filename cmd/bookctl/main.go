package main

import "bibliolights/internal/cli"

func main() {
	cli.Execute()
}
