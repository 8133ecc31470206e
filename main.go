package main

import "github.com/veldrin/prisma-cli/cmd"

func main() {
	cmd.Execute()
}
