package main

import (
	"log"

	_ "registro_inpi/docs"
	"registro_inpi/internal/adapter/http/routes"
	"registro_inpi/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Registro INPI API
// @version         1.0
// @description     Process and billing ledger for INPI trademark, patent and design registrations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
