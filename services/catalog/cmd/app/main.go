package main

import (
	"campshop/pkg/config"
	app "campshop/services/catalog/internal/app"

	_ "campshop/services/catalog/docs" // Swagger docs
)

// @title           Campshop API
// @version         1.0
// @description     Bootcamps, courses, categories, products and reviews with role based access.

// @contact.name   API Support
// @contact.email  support@campshop.io

// @license.name  MIT

// @host      localhost:5000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
