// Command hash-api-key generates the bcrypt hash of an API key for the
// API_KEY_HASH environment variable.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s <api-key>", os.Args[0])
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash API key: %v", err)
	}

	fmt.Println(string(hash))
}
