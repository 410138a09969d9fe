package handler

import (
	"net/http"
	"strings"

	"divination/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// PostProfile godoc
// @Summary      Build a combined profile
// @Description  Birth chart, sun sign, numerology report and, when names are given, a five-grid analysis
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body  domain.ProfileRequest  true  "Profile request"
// @Success      200  {object}  domain.DivinationProfile
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/profile [post]
func (h *Handler) PostProfile(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.post-profile")
	defer span.End()

	var req domain.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}
	req.BirthDate = strings.TrimSpace(req.BirthDate)
	req.BirthTime = strings.TrimSpace(req.BirthTime)
	if req.BirthDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date is required (YYYY-MM-DD)"})
		return
	}
	if !validClock(req.BirthTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_time must be HH:MM"})
		return
	}
	span.SetAttributes(attribute.String("date", req.BirthDate))

	profile, err := h.profileService.BuildProfile(ctx, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
