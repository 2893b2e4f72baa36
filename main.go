package main

import "brandlens-cli/cmd"

func main() {
	cmd.Execute()
}
