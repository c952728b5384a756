package main

import "github.com/KaramelBytes/cronometer-cli/cmd"

func main() {
	cmd.Execute()
}
