package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/opstrack/forms-go/internal/application"
	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/opstrack/forms-go/internal/repository"
	"github.com/opstrack/forms-go/internal/repository/mock"
	"gorm.io/gorm"
)

func newReportService(t *testing.T) (*application.ReportService, *mock.MockFormRepo, *mock.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	formRepo := mock.NewMockFormRepo(ctrl)
	subRepo := mock.NewMockSubmissionRepo(ctrl)
	repos := &repository.Repos{Form: formRepo, Submission: subRepo}
	return application.NewReportService(repos), formRepo, subRepo
}

func TestBuildReport(t *testing.T) {
	f := shiftReportForm()

	t.Run("pivots responses into field order columns", func(t *testing.T) {
		svc, formRepo, subRepo := newReportService(t)
		formRepo.EXPECT().GetFormByID(uint(1)).Return(f, nil)
		formRepo.EXPECT().ListFields(uint(1)).Return(f.Fields, nil)
		subRepo.EXPECT().ListResponses(uint(1), gomock.Any()).Return([]submission.FormResponse{
			{Model: gorm.Model{ID: 7}},
			{Model: gorm.Model{ID: 8}},
		}, nil)
		subRepo.EXPECT().ListValuesForResponses([]uint{7, 8}, []uint{10, 11, 12}).Return([]submission.FormResponseValue{
			{ResponseID: 7, FieldID: 10, Value: "Ana"},
			{ResponseID: 7, FieldID: 11, Value: "morning"},
			{ResponseID: 7, FieldID: 12, Value: "3"},
			{ResponseID: 8, FieldID: 10, Value: "Ben"},
			{ResponseID: 8, FieldID: 11, Value: "evening"},
		}, nil)

		report, err := svc.Build(1, nil, nil, 0)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}

		wantHeadings := []string{"Operator Name", "Shift", "Defects Found"}
		if len(report.Headings) != len(wantHeadings) {
			t.Fatalf("expected %d headings, got %d", len(wantHeadings), len(report.Headings))
		}
		for i, h := range wantHeadings {
			if report.Headings[i] != h {
				t.Fatalf("heading %d: expected %q, got %q", i, h, report.Headings[i])
			}
		}

		if len(report.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(report.Rows))
		}
		for _, row := range report.Rows {
			if len(row) != len(wantHeadings) {
				t.Fatalf("row width %d, want %d", len(row), len(wantHeadings))
			}
		}
		if report.Rows[0][0] != "Ana" || report.Rows[0][2] != "3" {
			t.Fatalf("unexpected first row: %v", report.Rows[0])
		}
		// Ben never answered defects; the cell is blank, not dropped.
		if report.Rows[1][2] != "" {
			t.Fatalf("expected empty cell for missing answer, got %q", report.Rows[1][2])
		}
	})

	t.Run("multi valued answers render joined", func(t *testing.T) {
		multi := form.Form{
			Model:  gorm.Model{ID: 2},
			Active: true,
			Fields: []form.FormField{
				{Model: gorm.Model{ID: 20}, FormID: 2, Label: "Defect Types", FieldCode: "defect_types", Type: form.FieldTypeMultiselect, Active: true},
			},
		}
		svc, formRepo, subRepo := newReportService(t)
		formRepo.EXPECT().GetFormByID(uint(2)).Return(multi, nil)
		formRepo.EXPECT().ListFields(uint(2)).Return(multi.Fields, nil)
		subRepo.EXPECT().ListResponses(uint(2), gomock.Any()).Return([]submission.FormResponse{{Model: gorm.Model{ID: 9}}}, nil)
		subRepo.EXPECT().ListValuesForResponses([]uint{9}, []uint{20}).Return([]submission.FormResponseValue{
			{ResponseID: 9, FieldID: 20, Value: `["dent","scratch"]`},
		}, nil)

		report, err := svc.Build(2, nil, nil, 0)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if report.Rows[0][0] != "dent, scratch" {
			t.Fatalf("expected joined cell, got %q", report.Rows[0][0])
		}
	})

	t.Run("form with no fields yields empty table", func(t *testing.T) {
		svc, formRepo, _ := newReportService(t)
		empty := form.Form{Model: gorm.Model{ID: 3}, Active: true}
		formRepo.EXPECT().GetFormByID(uint(3)).Return(empty, nil)
		formRepo.EXPECT().ListFields(uint(3)).Return(nil, nil)

		report, err := svc.Build(3, nil, nil, 0)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if len(report.Headings) != 0 || len(report.Rows) != 0 {
			t.Fatalf("expected empty report, got %v", report)
		}
	})

	t.Run("no responses yields headings only", func(t *testing.T) {
		svc, formRepo, subRepo := newReportService(t)
		formRepo.EXPECT().GetFormByID(uint(1)).Return(f, nil)
		formRepo.EXPECT().ListFields(uint(1)).Return(f.Fields, nil)
		subRepo.EXPECT().ListResponses(uint(1), gomock.Any()).Return(nil, nil)

		report, err := svc.Build(1, nil, nil, 0)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if len(report.Headings) != 3 || len(report.Rows) != 0 {
			t.Fatalf("expected headings only, got %v", report)
		}
	})

	t.Run("date filter and limit pass through", func(t *testing.T) {
		svc, formRepo, subRepo := newReportService(t)
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

		formRepo.EXPECT().GetFormByID(uint(1)).Return(f, nil)
		formRepo.EXPECT().ListFields(uint(1)).Return(f.Fields, nil)
		subRepo.EXPECT().ListResponses(uint(1), gomock.Any()).DoAndReturn(func(_ uint, filter repository.ResponseFilter) ([]submission.FormResponse, error) {
			if filter.From == nil || !filter.From.Equal(from) {
				t.Fatalf("unexpected from: %v", filter.From)
			}
			if filter.To == nil || !filter.To.Equal(to) {
				t.Fatalf("unexpected to: %v", filter.To)
			}
			if filter.Limit != 25 {
				t.Fatalf("unexpected limit: %d", filter.Limit)
			}
			return nil, nil
		})

		if _, err := svc.Build(1, &from, &to, 25); err != nil {
			t.Fatalf("Build failed: %v", err)
		}
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		svc, formRepo, subRepo := newReportService(t)
		formRepo.EXPECT().GetFormByID(uint(1)).Return(f, nil)
		formRepo.EXPECT().ListFields(uint(1)).Return(f.Fields, nil)
		subRepo.EXPECT().ListResponses(uint(1), gomock.Any()).DoAndReturn(func(_ uint, filter repository.ResponseFilter) ([]submission.FormResponse, error) {
			if filter.Limit != application.DefaultReportLimit {
				t.Fatalf("expected default limit, got %d", filter.Limit)
			}
			return nil, nil
		})

		if _, err := svc.Build(1, nil, nil, 0); err != nil {
			t.Fatalf("Build failed: %v", err)
		}
	})

	t.Run("unknown form", func(t *testing.T) {
		svc, formRepo, _ := newReportService(t)
		formRepo.EXPECT().GetFormByID(uint(404)).Return(form.Form{}, gorm.ErrRecordNotFound)

		_, err := svc.Build(404, nil, nil, 0)
		if !errors.Is(err, application.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
