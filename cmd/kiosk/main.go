package main

import (
	"log"
	"os"

	"github.com/Code4Bharat1/rfid/internal/aggregator"
	"github.com/Code4Bharat1/rfid/internal/api"
	"github.com/Code4Bharat1/rfid/internal/config"
	"github.com/Code4Bharat1/rfid/internal/player"
	"github.com/Code4Bharat1/rfid/internal/scheduler"
	"github.com/Code4Bharat1/rfid/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.VideoDir, 0o755); err != nil {
		log.Fatalf("create video dir: %v", err)
	}

	cache := storage.NewCacheStore(cfg.CacheFile)
	rotation := storage.NewRotationStore(cfg.StateFile)
	videoMap := storage.NewVideoMapStore(cfg.MapFile)
	errLog := storage.NewErrorLog(cfg.NewsLogFile)

	agg := aggregator.New(aggregator.DefaultFetchers(cfg), cache, errLog, cfg.MaxNewsItems)

	s, err := scheduler.New(cfg.RefreshInterval, func() { agg.Run() })
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)

	server := api.NewServer(cache, rotation, videoMap, errLog, player.New(), cfg.VideoDir)
	server.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting kiosk server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
