package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Code4Bharat1/rfid/internal/aggregator"
	"github.com/Code4Bharat1/rfid/internal/collector"
	"github.com/Code4Bharat1/rfid/internal/player"
	"github.com/Code4Bharat1/rfid/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idleRotateSeconds = 30

// Server wires the admin UI, idle ticker and JSON APIs to the file
// stores and the media player.
type Server struct {
	Cache    *storage.CacheStore
	Rotation *storage.RotationStore
	VideoMap *storage.VideoMapStore
	ErrLog   *storage.ErrorLog
	Player   *player.Player
	VideoDir string
}

func NewServer(cache *storage.CacheStore, rotation *storage.RotationStore, videoMap *storage.VideoMapStore, errLog *storage.ErrorLog, pl *player.Player, videoDir string) *Server {
	return &Server{
		Cache:    cache,
		Rotation: rotation,
		VideoMap: videoMap,
		ErrLog:   errLog,
		Player:   pl,
		VideoDir: videoDir,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	r.GET("/", s.adminIndex)
	r.POST("/upload", s.upload)
	r.POST("/map", s.bindUID)
	r.GET("/delete/:uid", s.unbindUID)
	r.POST("/play/:uid", s.play)

	r.GET("/idle", s.idle)
	r.GET("/api/news", s.apiNews)
	r.GET("/api/map", s.apiMap)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) adminIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"videoMap": s.VideoMap.Load(),
		"files":    s.listVideos(),
	})
}

func (s *Server) listVideos() []string {
	entries, err := os.ReadDir(s.VideoDir)
	if err != nil {
		return nil
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}

func (s *Server) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	// Strip any path the browser sent and dodge name collisions.
	name := filepath.Base(file.Filename)
	dst := filepath.Join(s.VideoDir, name)
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + "-" + uuid.NewString()[:8] + ext
		dst = filepath.Join(s.VideoDir, name)
	}

	if err := c.SaveUploadedFile(file, dst); err != nil {
		s.ErrLog.Logf("Upload error: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) bindUID(c *gin.Context) {
	uid := strings.TrimSpace(c.PostForm("uid"))
	file := strings.TrimSpace(c.PostForm("file"))
	if uid != "" && file != "" {
		if err := s.VideoMap.Bind(uid, file); err != nil {
			s.ErrLog.Logf("Bind %s error: %v", uid, err)
		}
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) unbindUID(c *gin.Context) {
	if err := s.VideoMap.Unbind(c.Param("uid")); err != nil {
		s.ErrLog.Logf("Unbind %s error: %v", c.Param("uid"), err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) play(c *gin.Context) {
	uid := c.Param("uid")
	file, ok := s.VideoMap.Lookup(uid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no video bound to uid"})
		return
	}
	if err := s.Player.Play(filepath.Join(s.VideoDir, file), true); err != nil {
		s.ErrLog.Logf("Play %s error: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "player failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "playing", "file": file})
}

// apiNews serves the raw cache snapshot; a missing or unreadable cache
// degrades to a single placeholder item, never an error.
func (s *Server) apiNews(c *gin.Context) {
	cache, err := s.Cache.Load()
	if err != nil {
		c.JSON(http.StatusOK, storage.NewsCache{
			Generated: 0,
			Items:     []collector.NewsItem{{Title: "No news available"}},
		})
		return
	}
	c.JSON(http.StatusOK, cache)
}

func (s *Server) apiMap(c *gin.Context) {
	c.JSON(http.StatusOK, s.VideoMap.Load())
}

// idle renders one headline per view and moves the rotation pointer.
// The stored index may be stale against the current item count, so it
// is reduced modulo the count before use. A cache that does not exist
// yet means the first cycle has not finished (waiting placeholder); a
// cache that exists but will not load is a real failure (error item).
func (s *Server) idle(c *gin.Context) {
	items := []collector.NewsItem{{Title: aggregator.PlaceholderTitle, Source: "System"}}
	generated := int64(0)

	cache, err := s.Cache.Load()
	switch {
	case err == nil && len(cache.Items) > 0:
		items = cache.Items
		generated = cache.Generated
	case err != nil && !errors.Is(err, os.ErrNotExist):
		s.ErrLog.Logf("Idle load error: %v", err)
		items = []collector.NewsItem{{Title: "Error loading headlines", Source: "System"}}
	}

	total := len(items)
	headline := items[s.Rotation.Read()%total]
	s.Rotation.Advance(total)

	updated := ""
	if generated > 0 {
		updated = time.Unix(generated, 0).Format("15:04")
	}

	c.HTML(http.StatusOK, "idle.html", gin.H{
		"headline":  headline,
		"updated":   updated,
		"rotateSec": idleRotateSeconds,
	})
}
