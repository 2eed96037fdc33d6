package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/incevents/incevents-api/cmd/app"
)

// @termsOfService  http://swagger.io/terms/
// @contact.name   API Support
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
