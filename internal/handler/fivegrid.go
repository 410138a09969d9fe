package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFiveGrid godoc
// @Summary      Five-grid name analysis
// @Description  Stroke-count analysis of a CJK surname and given name
// @Tags         numerology
// @Produce      json
// @Param        surname  query  string  true  "Surname"
// @Param        given    query  string  true  "Given name"
// @Success      200  {object}  domain.NameAnalysis
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/five-grid [get]
func (h *Handler) GetFiveGrid(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-five-grid")
	defer span.End()

	analysis, err := h.profileService.AnalyzeFiveGridName(ctx, c.Query("surname"), c.Query("given"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
