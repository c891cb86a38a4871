package main

import (
	"log"

	"github.com/NVIDIA/menu-record-service/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
