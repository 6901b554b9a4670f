package main

import (
	"log"

	"github.com/Code4Bharat1/rfid/internal/aggregator"
	"github.com/Code4Bharat1/rfid/internal/config"
	"github.com/Code4Bharat1/rfid/internal/storage"
)

// One-shot collection entry: run a single refresh cycle and exit.
// Handy for cron-free setups and for refilling the cache by hand.
func main() {
	cfg := config.Load()

	cache := storage.NewCacheStore(cfg.CacheFile)
	errLog := storage.NewErrorLog(cfg.NewsLogFile)

	agg := aggregator.New(aggregator.DefaultFetchers(cfg), cache, errLog, cfg.MaxNewsItems)
	result := agg.Run()

	log.Printf("cached %d headlines (generated=%d)", len(result.Items), result.Generated)
}
