package main

import "github.com/zbiljic/autocommit/cmd"

func main() {
	cmd.Execute()
}
