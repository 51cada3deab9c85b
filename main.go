package main

import "github.com/they4kman/gomemory/cmd"

func main() {
	cmd.Execute()
}
