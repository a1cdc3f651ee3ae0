package main

import "github.com/rubbishhaha/vocab/cmd"

func main() {
	cmd.Execute()
}
