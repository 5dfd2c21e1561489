package main

import "urlclean/cmd"

func main() {
	cmd.Execute()
}
