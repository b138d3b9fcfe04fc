package main

import "roundest/cmd"

func main() {
	cmd.Execute()
}
