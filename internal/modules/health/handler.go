package health

import (
	"context"
	"net/http"
	"time"

	"reelstream/internal/domain"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// StatsSource is the slice of the persistence gateway the health
// endpoints need.
type StatsSource interface {
	IsConnected() bool
	Stats(ctx context.Context) domain.ReelStats
}

type Handler struct {
	db StatsSource
}

func NewHandler(db StatsSource) *Handler {
	return &Handler{db: db}
}

// Home handles GET /: a service banner.
func (h *Handler) Home(c *gin.Context) {
	dbLabel := "disconnected (serving fallback data)"
	if h.db.IsConnected() {
		dbLabel = "MongoDB"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reelstream API",
		"status":    "active",
		"version":   apiVersion,
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  dbLabel,
	})
}

// Health handles GET /health: liveness plus database stats.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"timestamp":          time.Now().Format(time.RFC3339),
		"database_connected": h.db.IsConnected(),
		"database_stats":     h.db.Stats(c.Request.Context()),
	})
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Home)
	r.GET("/health", h.Health)
}
