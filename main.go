package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/shwenadi/goldshop-api/cmd/app"
)

// @title           Goldshop Admin API
// @description     Back office API for a jewelry retail store.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
