//go:build ignore

// Generates the JWT signing key and the bcrypt hash of the seller password.
// Run with: go run scripts/generate_keys.go [seller-password]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	fmt.Println("=== Container Quote Key Generator ===")
	fmt.Println()

	// 32 bytes = 256 bits for HS256
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		password, err = generateSecureKey(12)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating seller password: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated seller password: %s\n\n", password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing seller password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT Configuration")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# Seller account")
	fmt.Println("SELLER_USERNAME=seller")
	fmt.Printf("SELLER_PASSWORD_HASH='%s'\n", hash)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these values to version control")
	fmt.Println("- Use a different key for each environment")
}
