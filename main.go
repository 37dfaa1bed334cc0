package main

import "github.com/timegear/timegear/cmd"

func main() {
	cmd.Execute()
}
