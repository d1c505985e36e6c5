// Package main Brew Directory API
// @title Brew Directory API
// @version 1.0
// @description Regional brewery directory: listings, nearby attractions, reviews and news
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/brew-directory/docs"
	"github.com/DjordjeVuckovic/brew-directory/internal/directory"
	"github.com/DjordjeVuckovic/brew-directory/internal/news"
	"github.com/DjordjeVuckovic/brew-directory/internal/proximity"
	"github.com/DjordjeVuckovic/brew-directory/internal/reviews"
	"github.com/DjordjeVuckovic/brew-directory/internal/router"
	"github.com/DjordjeVuckovic/brew-directory/internal/server"
	"github.com/DjordjeVuckovic/brew-directory/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// the server context doubles as the startup context so Ctrl+C aborts a slow connect;
	// the health checker is attached once storage is open
	s := server.New(&cfg.ServerConfig, nil)

	stores, err := factory.Open(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}

	s.WithHealthChecker(stores.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Brew Directory API is running")
	})

	var resolverOpts []proximity.Option
	if stores.Nearby != nil {
		resolverOpts = append(resolverOpts, proximity.WithNearbyQuerier(stores.Nearby))
	}
	if stores.Probe != nil {
		resolverOpts = append(resolverOpts, proximity.WithProbe(stores.Probe))
	}
	slog.Info("Proximity configured", "backend", cfg.StorageConfig.Nearby, "probe", cfg.StorageConfig.Probe)

	// the API never writes, so the privileged writer is not wired here
	dir := directory.NewService(stores.Entries, nil,
		directory.WithResolver(proximity.NewResolver(stores.Entries, resolverOpts...)))

	router.NewAttractionRouter(s.Echo, dir).Bind()
	router.NewBreweryRouter(s.Echo, dir, reviews.NewService(stores.Reviews), news.NewService(stores.News)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	stores.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
