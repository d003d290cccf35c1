package main

import "probsim/cli"

func main() {
	cli.Execute()
}
