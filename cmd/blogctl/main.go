package main

import "github.com/techblog-api/cmd/blogctl/commands"

func main() {
	commands.Execute()
}
