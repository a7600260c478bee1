package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mbarros/particle-clash/internal/api"
	"github.com/mbarros/particle-clash/internal/cache"
	"github.com/mbarros/particle-clash/internal/constants"
	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/logging"
	"github.com/mbarros/particle-clash/internal/service"
)

func main() {
	// Load strategy configuration. Path may be provided via CLASH_CONFIG or
	// defaults to ./clash_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via CLASH_DB. Default to a data/
	// directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	if cfg.DatabasePath != "" {
		dbPath = cfg.DatabasePath
	}
	repo := createRepositoryOrExit(dbPath)

	eng := engine.New(cfg.Registry, cfg.Selector, cfg.Scoring)
	svc := service.NewBattleService(repo, eng, cfg.Catalog, cache.New())
	handler := api.NewBattleHandler(svc, repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteStrategies, handler.ListStrategies)
		apiRoutes.GET(constants.RouteCreatures, handler.ListCreatures)
		apiRoutes.POST(constants.RouteCreatures, handler.CreateCreature)
		apiRoutes.GET(constants.RouteCreatureByID, handler.GetCreature)
		apiRoutes.POST(constants.RouteBattles, handler.ResolveBattle)
		apiRoutes.POST(constants.RouteBattlePreview, handler.PreviewBattle)
		apiRoutes.GET(constants.RouteBattles, handler.ListBattles)
		apiRoutes.GET(constants.RouteBattleByID, handler.GetBattle)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	if addr == "" {
		addr = constants.DefaultServerAddress
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
