package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/application"
)

type Handlers struct {
	Form     *FormHandler
	Response *ResponseHandler
	Report   *ReportHandler
	Router   *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Form:     NewFormHandler(svc.Form),
		Response: NewResponseHandler(svc.Submission),
		Report:   NewReportHandler(svc.Report),
		Router:   router,
	}
}
