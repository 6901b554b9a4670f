package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DataDir  string
	VideoDir string

	CacheFile    string
	StateFile    string
	MapFile      string
	NewsLogFile  string
	TemplateGlob string

	RefreshInterval time.Duration
	MaxNewsItems    int

	NewsAPIKey     string
	GNewsKey       string
	MediastackKey  string
	NewsDataKey    string
	TheNewsAPIKey  string
	RapidAPIKey    string
	RapidAPIHost   string
	WebzKey        string
	GuardianKey    string
	NYTimesKey     string
	NewscatcherKey string
}

func Load() *Config {
	// Credentials live in a local .env next to the binary; absence is fine.
	_ = godotenv.Load()

	dataDir := getEnv("KIOSK_DATA_DIR", ".")

	cfg := &Config{
		AppPort: getEnv("APP_PORT", "5000"),

		DataDir:  dataDir,
		VideoDir: getEnv("KIOSK_VIDEO_DIR", filepath.Join(dataDir, "videos")),

		CacheFile:    filepath.Join(dataDir, "news_cache.json"),
		StateFile:    filepath.Join(dataDir, "news_state.json"),
		MapFile:      filepath.Join(dataDir, "video_map.json"),
		NewsLogFile:  filepath.Join(dataDir, "news.log"),
		TemplateGlob: getEnv("KIOSK_TEMPLATES", "web/templates/*.html"),

		RefreshInterval: getDuration("NEWS_REFRESH_INTERVAL", 5*time.Minute),
		MaxNewsItems:    getInt("NEWS_MAX_ITEMS", 120),

		NewsAPIKey:     getEnv("NEWSAPI_KEY", ""),
		GNewsKey:       getEnv("GNEWS_KEY", ""),
		MediastackKey:  getEnv("MEDIASTACK_KEY", ""),
		NewsDataKey:    getEnv("NEWSDATA_KEY", ""),
		TheNewsAPIKey:  getEnv("THENEWSAPI_KEY", ""),
		RapidAPIKey:    getEnv("RAPIDAPI_KEY", ""),
		RapidAPIHost:   getEnv("RAPIDAPI_HOST", ""),
		WebzKey:        getEnv("WEBZ_KEY", ""),
		GuardianKey:    getEnv("GUARDIAN_KEY", ""),
		NYTimesKey:     getEnv("NYTIMES_KEY", ""),
		NewscatcherKey: getEnv("NEWSCATCHER_KEY", ""),
	}

	log.Printf("config loaded: port=%s data=%s refresh=%s", cfg.AppPort, cfg.DataDir, cfg.RefreshInterval)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
