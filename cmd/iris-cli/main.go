package main

import "iris/cmd/iris-cli/cmd"

func main() {
	cmd.Execute()
}
