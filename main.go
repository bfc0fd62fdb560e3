package main

import "curriculum-manager/cmd"

func main() {
	cmd.Execute()
}
