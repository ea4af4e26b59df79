package main

import "github.com/recapio/recap/cmd"

func main() {
	cmd.Execute()
}
