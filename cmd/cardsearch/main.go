package main

import (
	"log"

	"github.com/Pomi44/OIB/cmd/cardsearch/app"
)

func main() {
	err := app.New().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
