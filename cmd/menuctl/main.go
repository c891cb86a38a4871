package main

import "github.com/NVIDIA/menu-record-service/pkg/cli"

func main() {
	cli.Execute()
}
