package handler

import (
	"net/http"
	"strconv"

	"divination/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetNumerologyReport godoc
// @Summary      Numerology report
// @Description  Life, expression, soul, personality, birthday, maturity and personal year numbers
// @Tags         numerology
// @Produce      json
// @Param        name  query  string  false  "Full name (Latin or CJK)"
// @Param        date  query  string  false  "Birth date (YYYY-MM-DD)"
// @Param        year  query  int     false  "Target year for the personal year number"
// @Success      200  {object}  domain.NumerologyReport
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/numerology [get]
func (h *Handler) GetNumerologyReport(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-numerology-report")
	defer span.End()

	year := 0
	if raw := queryTrimmed(c, "year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be between 1 and 9999"})
			return
		}
		year = n
	}

	report, err := h.profileService.BuildNumerologyReport(ctx, c.Query("name"), c.Query("date"), year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetLifeNumberProfile godoc
// @Summary      Life number profile
// @Tags         numerology
// @Produce      json
// @Param        number  path  int  true  "Life number (1-9, 11, 22, 33)"
// @Success      200  {object}  domain.LifeNumberProfile
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/numerology/life-numbers/{number} [get]
func (h *Handler) GetLifeNumberProfile(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-life-number-profile")
	defer span.End()

	n, ok := service.ParseLifeNumber(c.Param("number"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number must be a positive integer"})
		return
	}
	span.SetAttributes(attribute.Int("life_number", n))

	profile := h.profileService.LookupLifeNumberProfile(ctx, n)
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile for life number " + strconv.Itoa(n)})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetNumerologyCompatibility godoc
// @Summary      Score life number compatibility
// @Tags         numerology
// @Produce      json
// @Param        a  query  int  true  "First life number"
// @Param        b  query  int  true  "Second life number"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/numerology/compatibility [get]
func (h *Handler) GetNumerologyCompatibility(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-numerology-compatibility")
	defer span.End()

	a, okA := service.ParseLifeNumber(c.Query("a"))
	b, okB := service.ParseLifeNumber(c.Query("b"))
	if !okA || !okB {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a and b must be positive integers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"a":     a,
		"b":     b,
		"score": h.profileService.ScoreNumerologyCompatibility(ctx, a, b),
	})
}
