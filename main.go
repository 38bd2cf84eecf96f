package main

import "backlog-manager/cmd"

func main() {
	cmd.Execute()
}
