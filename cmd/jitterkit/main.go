package main

import "github.com/jitterbugs/jitterkit/internal/cli"

func main() {
	cli.Run()
}
