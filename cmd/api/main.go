package main

import (
	"fmt"
	"os"

	_ "bell24h_negotiation/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bell24h Negotiation API
// @version         1.0
// @description     Buyer/supplier price negotiation on RFQs with AI advisory and settlement.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
