package main

import "github.com/jsphweid/notesprite/cmd"

func main() {
	cmd.Execute()
}
