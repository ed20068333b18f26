// Package main is the entry point for the container-quote application.
//
// @title           Container Quote API
// @version         1.0.0
// @description     Prices a shipping container of products bought from a factory.
//
//	Allocates each active product into the container by mix percentage or unit quantity,
//	prices every line with margin, freight and undocumented expenses, and returns the seller
//	or customer view of the quote. Catalogs and named scenarios are kept in MongoDB.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/container-quote
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Seller access token as "Bearer <token>". Required for seller routes when authentication is enabled.
//
// @tag.name        Quotes
// @tag.description Container quotes and allocation
//
// @tag.name        Catalog
// @tag.description Shared product catalog
//
// @tag.name        Scenarios
// @tag.description Saved quote scenarios
//
// @tag.name        Auth
// @tag.description Seller authentication
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/container-quote/docs" // swagger docs

	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/app"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to read .env")
	}
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
