package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type chartQuery struct {
	date  string
	clock string
	place string
}

func parseChartQuery(c *gin.Context) (chartQuery, bool) {
	q := chartQuery{
		date:  queryTrimmed(c, "date"),
		clock: queryTrimmed(c, "time"),
		place: queryTrimmed(c, "place"),
	}
	if q.date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return chartQuery{}, false
	}
	if !validClock(q.clock) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be HH:MM"})
		return chartQuery{}, false
	}
	return q, true
}

// GetBirthChart godoc
// @Summary      Generate a birth chart
// @Description  Deterministic chart with planet placements, aspects, houses and element balance
// @Tags         chart
// @Produce      json
// @Param        date   query  string  true   "Birth date (YYYY-MM-DD)"
// @Param        time   query  string  false  "Birth time (HH:MM), defaults to the configured clock"
// @Param        place  query  string  false  "Birth place label"
// @Success      200  {object}  domain.BirthChart
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/chart [get]
func (h *Handler) GetBirthChart(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-birth-chart")
	defer span.End()

	q, ok := parseChartQuery(c)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("date", q.date))

	chart, err := h.profileService.GenerateBirthChart(ctx, q.date, q.clock, q.place)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// GetBirthChartImage godoc
// @Summary      Render a birth chart wheel
// @Tags         chart
// @Produce      png
// @Param        date   query  string  true   "Birth date (YYYY-MM-DD)"
// @Param        time   query  string  false  "Birth time (HH:MM)"
// @Param        place  query  string  false  "Birth place label"
// @Success      200  {file}    binary
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/chart/image [get]
func (h *Handler) GetBirthChartImage(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-birth-chart-image")
	defer span.End()

	q, ok := parseChartQuery(c)
	if !ok {
		return
	}

	img, err := h.profileService.RenderChartImage(ctx, q.date, q.clock, q.place)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	span.SetAttributes(attribute.Int("image.bytes", len(img.Bytes)))

	c.Header("Content-Length", strconv.Itoa(len(img.Bytes)))
	c.Data(http.StatusOK, img.MimeType, img.Bytes)
}
