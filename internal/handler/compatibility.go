package handler

import (
	"net/http"
	"strconv"

	"divination/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetSignCompatibility godoc
// @Summary      Score sign compatibility
// @Description  Symmetric 0-100 score for two signs; unknown signs score 50
// @Tags         compatibility
// @Produce      json
// @Param        a         query  string  true   "First sign id (e.g. aries)"
// @Param        b         query  string  true   "Second sign id (e.g. leo)"
// @Param        detailed  query  bool    false  "Include breakdown, strengths and challenges"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/compatibility/signs [get]
func (h *Handler) GetSignCompatibility(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-sign-compatibility")
	defer span.End()

	a := service.NormalizeSignID(c.Query("a"))
	b := service.NormalizeSignID(c.Query("b"))
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both a and b sign ids are required"})
		return
	}
	span.SetAttributes(attribute.String("sign.a", string(a)), attribute.String("sign.b", string(b)))

	detailed := false
	if raw := queryTrimmed(c, "detailed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "detailed must be true or false"})
			return
		}
		detailed = v
	}

	if detailed {
		c.JSON(http.StatusOK, h.profileService.ScoreDetailedCompatibility(ctx, string(a), string(b)))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"first":  a,
		"second": b,
		"score":  h.profileService.ScoreCompatibility(ctx, string(a), string(b)),
	})
}
