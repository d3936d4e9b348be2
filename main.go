package main

import "codepet/internal/cli"

func main() {
	cli.Execute()
}
