package application

import (
	"time"

	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/opstrack/forms-go/internal/repository"
)

// DefaultReportLimit caps report rows when the caller gives no limit.
const DefaultReportLimit = 1000

// ReportService reconstructs the attribute-value rows of a form's responses
// into one wide table, columns ordered by field definition order.
type ReportService struct {
	Repos *repository.Repos
}

func NewReportService(repos *repository.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

// Build pivots every qualifying response of the form into one row. A form
// with no fields yields empty headings and rows; fields with no qualifying
// responses yield headings only. The read is not isolated from concurrent
// writes; reports are snapshots, not point-in-time guarantees.
func (s *ReportService) Build(formID uint, from, to *time.Time, limit int) (*submission.Report, error) {
	if _, err := s.Repos.Form.GetFormByID(formID); err != nil {
		return nil, asNotFound(err)
	}

	fields, err := s.Repos.Form.ListFields(formID)
	if err != nil {
		return nil, err
	}

	report := &submission.Report{Headings: []string{}, Rows: [][]string{}}
	if len(fields) == 0 {
		return report, nil
	}

	fieldIDs := make([]uint, len(fields))
	for i, fld := range fields {
		report.Headings = append(report.Headings, fld.Label)
		fieldIDs[i] = fld.ID
	}

	if limit <= 0 {
		limit = DefaultReportLimit
	}
	responses, err := s.Repos.Submission.ListResponses(formID, repository.ResponseFilter{
		From:  from,
		To:    to,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return report, nil
	}

	responseIDs := make([]uint, len(responses))
	for i, resp := range responses {
		responseIDs[i] = resp.ID
	}

	values, err := s.Repos.Submission.ListValuesForResponses(responseIDs, fieldIDs)
	if err != nil {
		return nil, err
	}

	type cellKey struct{ responseID, fieldID uint }
	cells := make(map[cellKey]submission.FormResponseValue, len(values))
	for _, v := range values {
		cells[cellKey{v.ResponseID, v.FieldID}] = v
	}

	for _, resp := range responses {
		row := make([]string, len(fields))
		for i, fld := range fields {
			v, ok := cells[cellKey{resp.ID, fld.ID}]
			if !ok {
				continue
			}
			row[i] = submission.DecodeRow(fld.Type, v.Value, v.FilePath).Display()
		}
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
