package main

import "greeter/cmd/server/cmd"

func main() {
	cmd.Execute()
}
