package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for the seed accounts in the migration scripts.
func main() {
	passwords := map[string]string{
		"admin@jobboard.local":    "@Admin2024!board",
		"employer@jobboard.local": "@Employer2024!hr",
		"seeker@jobboard.local":   "@Seeker2024!dev",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
