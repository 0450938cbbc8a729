package reels

import (
	"net/http"
	"strconv"

	"reelstream/internal/pkg/response"
	"reelstream/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetReels handles GET /reels with optional hashtag/username filters
// and offset pagination.
func (h *Handler) GetReels(c *gin.Context) {
	f := repository.ReelFilters{
		Hashtag:  c.Query("hashtag"),
		Username: c.Query("username"),
		Limit:    parseClamped(c.Query("limit"), 20, 1, 100),
		Skip:     parseClamped(c.Query("skip"), 0, 0, 1<<30),
	}

	reels, source := h.service.ListReels(c.Request.Context(), f)

	response.OK(c, http.StatusOK, gin.H{
		"reels":  reels,
		"count":  len(reels),
		"source": source,
	})
}

// SearchReels handles GET /reels/search?q=&limit=.
func (h *Handler) SearchReels(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.Error(c, http.StatusBadRequest, "Search term required")
		return
	}
	limit := parseClamped(c.Query("limit"), 20, 1, 100)

	reels, source := h.service.SearchReels(c.Request.Context(), term, limit)

	response.OK(c, http.StatusOK, gin.H{
		"reels":  reels,
		"count":  len(reels),
		"source": source,
	})
}

// SaveReel handles POST /reels/save.
func (h *Handler) SaveReel(c *gin.Context) {
	var req SaveReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Video URL required")
		return
	}

	id, savedTo := h.service.SaveReel(c.Request.Context(), req.toDomain())

	response.OK(c, http.StatusOK, gin.H{
		"id":       id,
		"saved_to": savedTo,
	})
}

// LikeReel handles POST /reels/:id/like.
func (h *Handler) LikeReel(c *gin.Context) {
	var req LikeRequest
	// A missing or empty body is not itself an error; the field check
	// below produces the contract message.
	_ = c.ShouldBindJSON(&req)
	if req.UserID == "" {
		response.Error(c, http.StatusBadRequest, "User ID required")
		return
	}

	savedTo := h.service.LikeReel(c.Request.Context(), c.Param("id"), req.UserID)

	response.OK(c, http.StatusOK, gin.H{
		"action":   "liked",
		"saved_to": savedTo,
	})
}

// CommentReel handles POST /reels/:id/comment.
func (h *Handler) CommentReel(c *gin.Context) {
	var req CommentRequest
	_ = c.ShouldBindJSON(&req)
	if req.UserID == "" {
		response.Error(c, http.StatusBadRequest, "User ID required")
		return
	}
	if req.Comment == "" {
		response.Error(c, http.StatusBadRequest, "Comment required")
		return
	}

	savedTo := h.service.CommentReel(c.Request.Context(), c.Param("id"), req.UserID, req.Comment)

	response.OK(c, http.StatusOK, gin.H{
		"action":   "commented",
		"saved_to": savedTo,
	})
}

// GetStats handles GET /stats.
func (h *Handler) GetStats(c *gin.Context) {
	stats, source := h.service.GetStats(c.Request.Context())

	response.OK(c, http.StatusOK, gin.H{
		"stats":  stats,
		"source": source,
	})
}

// RegisterRoutes registers all reel routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reels := r.Group("/reels")
	{
		reels.GET("", h.GetReels)
		reels.GET("/search", h.SearchReels)
		reels.POST("/save", h.SaveReel)
		reels.POST("/:id/like", h.LikeReel)
		reels.POST("/:id/comment", h.CommentReel)
	}

	r.GET("/stats", h.GetStats)
}

// parseClamped parses a query integer, falling back to def and clamping
// into [lo, hi].
func parseClamped(raw string, def, lo, hi int) int {
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
