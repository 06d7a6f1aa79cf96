// package env contains simple getters for the environment variables the
// neshry binaries rely on.
package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file when one exists in the working directory.
// A missing file is fine; the process environment simply wins.
func Load() {
	_ = godotenv.Load()
}

func NeshanAPIKey() (string, error) {
	var apiKey string
	if apiKey = os.Getenv("NESHAN_API_KEY"); apiKey == "" {
		return "", fmt.Errorf("missing NESHAN_API_KEY environment variable. Please check your environment.")
	}

	return apiKey, nil
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}

	return "8080"
}
