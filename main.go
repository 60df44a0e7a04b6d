package main

import "github.com/theirongolddev/moneymirror/cmd"

func main() {
	cmd.Execute()
}
