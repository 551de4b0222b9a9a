package main

import "schnapsen/cmd"

func main() {
	cmd.Execute()
}
