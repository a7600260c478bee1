package main

import (
	"net/http"
	"os"
	"time"
)

// Container liveness probe for the particle-clash server.
func main() {
	base := os.Getenv("CLASH_HEALTH_ADDR")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(base + "/api/version")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
