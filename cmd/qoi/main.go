package main

import "github.com/pixfmt/qoi/cmd/qoi/cmd"

func main() {
	cmd.Execute()
}
