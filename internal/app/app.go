// Package app wires configuration, storage, services and the HTTP router.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/http"
)

// Application is the initialized service: the router plus the resources
// that must be released on shutdown.
type Application struct {
	Router   *gin.Engine
	Database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	// Logger first, every other component logs during startup
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg)
	dbComponents := InitializeDatabase(cfg.Database)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &Application{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Database: dbComponents,
	}
}

// Close disconnects from MongoDB when persistence is enabled.
func (a *Application) Close(ctx context.Context) error {
	return a.Database.Close(ctx)
}
