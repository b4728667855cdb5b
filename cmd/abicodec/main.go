package main

import (
	"abicodec/cmd/abicodec/cmd"
)

func main() {
	cmd.Execute()
}
