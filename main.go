// Package main is the entry point for the tourbrute CLI.
package main

import "tourbrute.dev/pkg/tourbrute/cmd"

func main() {
	cmd.Execute()
}
