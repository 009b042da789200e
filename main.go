package main

import "github.com/StinkyLord/metacompose/cmd"

func main() {
	cmd.Execute()
}
