package main

import "github.com/Fepozopo/vseg/pkg/cli"

func main() {
	cli.RunCLI()
}
