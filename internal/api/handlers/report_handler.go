package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/application"
	"github.com/opstrack/forms-go/pkg/response"
)

type ReportHandler struct {
	service *application.ReportService
}

func NewReportHandler(service *application.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetReport pivots a form's responses into a wide table. Optional query
// params: date_from, date_to (YYYY-MM-DD), limit.
func (h *ReportHandler) GetReport(c *gin.Context) {
	formID, ok := idParam(c)
	if !ok {
		return
	}

	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = n
	}

	report, err := h.service.Build(formID, from, to, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dateRange parses the optional date_from/date_to query params. date_to is
// inclusive of its whole day.
func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid date_from"})
			return nil, nil, false
		}
		from = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid date_to"})
			return nil, nil, false
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, true
}
