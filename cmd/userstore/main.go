package main

import (
	"log"

	"user-store/cmd/userstore/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
