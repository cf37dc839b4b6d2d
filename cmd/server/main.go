// Package main implements the entry point for the taskline API server,
// which manages users' scheduled tasks and runs the periodic expiry sweep
// that marks missed deadlines Incompleted.
package main

import (
	"log"
)

func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
