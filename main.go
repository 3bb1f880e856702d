package main

import "github.com/icarusdb/icdb/cmd"

func main() {
	cmd.Execute()
}
