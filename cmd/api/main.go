package main

import (
	"log"

	_ "palettepad/docs"
	"palettepad/internal/adapter/http/routes"
	"palettepad/internal/config"
	"palettepad/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           PalettePad API
// @version         1.0
// @description     Color log, client/offer/payment tracker and offer builder for painting jobs.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	flush, err := logging.Setup(cfg.LogLevel, cfg.Development)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer flush()

	if err := routes.Run(cfg); err != nil {
		zap.S().Fatalf("[main] %v", err)
	}
}
