package main

import "github.com/candlewick-labs/tasklight/cmd"

func main() {
	cmd.Execute()
}
