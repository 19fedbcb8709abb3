package main

import "github.com/ddurler/star-battle/cmd"

func main() {
	cmd.Execute()
}
