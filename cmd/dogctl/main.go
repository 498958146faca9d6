package main

import "dog-health-tracker/cmd/dogctl/commands"

func main() {
	commands.Execute()
}
