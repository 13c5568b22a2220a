package main

import "github.com/mouse-blink/formtrack/cmd"

func main() {
	cmd.Execute()
}
