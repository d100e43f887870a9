package main

import "github.com/they4kman/sweep/cmd"

func main() {
	cmd.Execute()
}
