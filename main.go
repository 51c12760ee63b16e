package main

import (
	"time"

	"github.com/cratenotes/cratenotes/config"
	"github.com/cratenotes/cratenotes/enrich"
	"github.com/cratenotes/cratenotes/models"
	"github.com/cratenotes/cratenotes/routes"
	"github.com/cratenotes/cratenotes/store"
	"github.com/cratenotes/cratenotes/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db, err := config.InitDatabase(cfg, &models.User{}, &models.Post{}, &models.Comment{})
	if err != nil {
		utils.Sugar.Fatalf("database init failed: %v", err)
	}

	enricher := enrich.NewEnricher(
		enrich.NewSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret),
		enrich.NewWikiClient(enrich.DefaultWikiBaseURL),
		utils.NewRedis(cfg),
		time.Duration(cfg.LookupTimeoutSeconds)*time.Second,
	)

	r := routes.SetupRouter(cfg, store.New(db), enricher)

	utils.Sugar.Infof("starting server on port %s", cfg.AppPort)
	if err := utils.RunServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
