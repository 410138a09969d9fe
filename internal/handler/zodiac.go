package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetZodiacSign godoc
// @Summary      Resolve a sun sign
// @Description  Returns the zodiac sign whose date range contains the birth date
// @Tags         zodiac
// @Produce      json
// @Param        date  query  string  true  "Birth date (YYYY-MM-DD)"
// @Success      200  {object}  domain.ZodiacSign
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/zodiac [get]
func (h *Handler) GetZodiacSign(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-zodiac-sign")
	defer span.End()

	date := queryTrimmed(c, "date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}
	span.SetAttributes(attribute.String("date", date))

	sign, err := h.profileService.ResolveZodiacSign(ctx, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sign)
}

// ListZodiacSigns godoc
// @Summary      List zodiac signs
// @Description  Returns the twelve signs in ecliptic order
// @Tags         zodiac
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]string
// @Router       /api/zodiac/signs [get]
func (h *Handler) ListZodiacSigns(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.list-zodiac-signs")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{
		"signs":   h.profileService.Signs(ctx),
		"aspects": h.profileService.Aspects(ctx),
		"houses":  h.profileService.Houses(ctx),
	})
}
