package main

import (
	"net/http"
	"os"
	"time"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/constants"
)

func main() {
	url := os.Getenv(constants.EnvHealthcheckURL)
	if url == "" {
		url = "http://127.0.0.1:8080" + constants.RouteVersionPublic
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
