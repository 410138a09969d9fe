package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"divination/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer         trace.Tracer
	profileService *service.ProfileService
}

func New(tracer trace.Tracer, profileService *service.ProfileService) *Handler {
	return &Handler{
		tracer:         tracer,
		profileService: profileService,
	}
}

// RegisterRoutes mounts every route on r. Extra middleware is applied to the
// /api group only so that /health stays reachable.
func (h *Handler) RegisterRoutes(r *gin.Engine, middleware ...gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api", middleware...)
	api.GET("/zodiac", h.GetZodiacSign)
	api.GET("/zodiac/signs", h.ListZodiacSigns)
	api.GET("/chart", h.GetBirthChart)
	api.GET("/chart/image", h.GetBirthChartImage)
	api.GET("/compatibility/signs", h.GetSignCompatibility)
	api.GET("/numerology", h.GetNumerologyReport)
	api.GET("/numerology/life-numbers/:number", h.GetLifeNumberProfile)
	api.GET("/numerology/compatibility", h.GetNumerologyCompatibility)
	api.GET("/five-grid", h.GetFiveGrid)
	api.POST("/profile", h.PostProfile)
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) unavailable(c *gin.Context) bool {
	if h.profileService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile service unavailable"})
		return true
	}
	return false
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRendererUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// validClock accepts an empty clock, which means the configured default.
func validClock(clock string) bool {
	if clock == "" {
		return true
	}
	_, err := time.Parse("15:04", clock)
	return err == nil
}

func queryTrimmed(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}
