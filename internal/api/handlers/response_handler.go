package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/opstrack/forms-go/internal/application"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/opstrack/forms-go/internal/repository"
	"github.com/opstrack/forms-go/pkg/response"
	"github.com/opstrack/forms-go/pkg/utils"
)

type ResponseHandler struct {
	service *application.SubmissionService
}

func NewResponseHandler(service *application.SubmissionService) *ResponseHandler {
	return &ResponseHandler{service: service}
}

func (h *ResponseHandler) CreateResponse(c *gin.Context) {
	formID, ok := idParam(c)
	if !ok {
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input submission.CreateResponseDTO
	files, ok := bindSubmission(c, &input)
	if !ok {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, formID, input, files)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	responseID, ok := idParam(c)
	if !ok {
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input submission.UpdateResponseDTO
	files, ok := bindSubmission(c, &input)
	if !ok {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, responseID, input, files)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResponseHandler) ReviewResponse(c *gin.Context) {
	responseID, ok := idParam(c)
	if !ok {
		return
	}

	reviewerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input submission.ReviewResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Review(reviewerID, responseID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResponseHandler) GetResponse(c *gin.Context) {
	responseID, ok := idParam(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(responseID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResponseHandler) ListResponses(c *gin.Context) {
	formID, ok := idParam(c)
	if !ok {
		return
	}

	filter := repository.ResponseFilter{
		Status: submission.Status(c.Query("status")),
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	filter.From = from
	filter.To = to

	resps, err := h.service.List(formID, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resps)
}

func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	responseID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(responseID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Response deleted"})
}

// bindSubmission reads the submission input either as a plain JSON body or as
// a multipart form carrying a "payload" JSON part plus binary uploads keyed by
// field_code. Attachments arrive out-of-band from scalar values.
func bindSubmission(c *gin.Context, input any) (map[string]*multipart.FileHeader, bool) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBindJSON(input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return nil, false
		}
		return nil, true
	}

	mpForm, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	payload := c.PostForm("payload")
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return nil, false
		}
	}

	files := map[string]*multipart.FileHeader{}
	for fieldCode, headers := range mpForm.File {
		if len(headers) > 0 {
			files[fieldCode] = headers[0]
		}
	}
	return files, true
}
