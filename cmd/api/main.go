// Command api runs the QuickShift job board HTTP server.
package main

import (
	"errors"
	"log"
	"net/http"

	"QuickShift-backend/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server stopped unexpectedly: %s", err)
	}
}
