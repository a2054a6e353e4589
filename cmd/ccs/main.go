package main

import "github.com/jzbor/ccs/cmd/ccs/cmd"

func main() {
	cmd.Execute()
}
