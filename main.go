// Package main is the entry point for the excgen CLI.
package main

import "excgen.dev/pkg/excgen/cmd"

func main() {
	cmd.Execute()
}
