package application

import (
	"github.com/opstrack/forms-go/internal/config"
	"github.com/opstrack/forms-go/internal/repository"
	"github.com/opstrack/forms-go/internal/storage"
)

type Services struct {
	Form       *FormService
	Submission *SubmissionService
	Report     *ReportService
}

func New(repos *repository.Repos, store storage.FileStore) *Services {
	return &Services{
		Form:       NewFormService(repos, store),
		Submission: NewSubmissionService(repos, store, config.RequireFileOnCreate),
		Report:     NewReportService(repos),
	}
}
