package main

import "github.com/jsphweid/povel/cmd"

func main() {
	cmd.Execute()
}
