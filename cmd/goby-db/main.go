package main

import "github.com/nfrund/goby-db/cmd/goby-db/cmd"

func main() {
	cmd.Execute()
}
