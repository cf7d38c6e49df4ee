package main

import "boardbridge/internal/cli"

func main() {
	cli.Execute()
}
