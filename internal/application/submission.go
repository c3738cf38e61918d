package application

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/opstrack/forms-go/internal/repository"
	"github.com/opstrack/forms-go/internal/storage"
	"github.com/opstrack/forms-go/internal/validation"
)

// SubmissionService orchestrates the response lifecycle: load schema, compile
// rules, validate, persist atomically, return the hydrated response.
type SubmissionService struct {
	Repos    *repository.Repos
	Store    storage.FileStore
	Registry validation.Registry

	// RequireFileOnCreate enforces required file fields on first submission.
	RequireFileOnCreate bool
}

func NewSubmissionService(repos *repository.Repos, store storage.FileStore, requireFileOnCreate bool) *SubmissionService {
	return &SubmissionService{
		Repos:               repos,
		Store:               store,
		Registry:            validation.DefaultRegistry(),
		RequireFileOnCreate: requireFileOnCreate,
	}
}

// Create validates the submitted values against the form's schema and writes
// the response header plus one value row per answered field in a single
// transaction. Validation failure returns *validation.FieldErrors and touches
// no storage.
func (s *SubmissionService) Create(ctx context.Context, userID, formID uint, input submission.CreateResponseDTO, files map[string]*multipart.FileHeader) (*submission.FormResponse, error) {
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !f.Active {
		return nil, ErrFormNotActive
	}

	status, submittedAt, err := createStatus(input.Status)
	if err != nil {
		return nil, err
	}

	rs := validation.Compile(f.Fields, validation.CompileOptions{
		Uploads:             uploadMeta(files),
		RequireFileOnCreate: s.RequireFileOnCreate,
		Registry:            s.Registry,
	})
	if errs := rs.Check(input.Values); errs != nil {
		return nil, errs
	}

	storedFiles, err := s.storeUploads(ctx, f, files)
	if err != nil {
		return nil, err
	}

	resp := &submission.FormResponse{
		FormID:      f.ID,
		UserID:      userID,
		BatchID:     input.BatchID,
		Status:      status,
		SubmittedAt: submittedAt,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.CreateResponse(resp); err != nil {
			return err
		}
		for _, fld := range f.Fields {
			row, ok := valueRow(fld, input.Values, storedFiles)
			if !ok {
				continue
			}
			row.ResponseID = resp.ID
			if err := tx.Submission.CreateValue(&row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Nothing persisted; release the already-stored uploads.
		releaseFiles(s.Store, pathsOf(storedFiles))
		log.Printf("Submission create rolled back: %v", err)
		return nil, ErrPersistence
	}

	return s.Get(resp.ID)
}

// Update re-validates and upserts values on a response still in an editable
// status. Replaced files are released only after the transaction commits.
func (s *SubmissionService) Update(ctx context.Context, userID, responseID uint, input submission.UpdateResponseDTO, files map[string]*multipart.FileHeader) (*submission.FormResponse, error) {
	resp, err := s.Repos.Submission.GetResponseByID(responseID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !resp.Status.Editable() {
		return nil, ErrInvalidTransition
	}

	f := resp.Form
	existing := map[uint]submission.FormResponseValue{}
	byCode := map[string]submission.FormResponseValue{}
	for _, v := range resp.Values {
		existing[v.FieldID] = v
		byCode[v.Field.FieldCode] = v
	}

	rs := validation.Compile(f.Fields, validation.CompileOptions{
		Uploads:  uploadMeta(files),
		Updating: true,
		HasStoredFile: func(fieldCode string) bool {
			v, ok := byCode[fieldCode]
			return ok && (v.FilePath != "" || v.Value != "")
		},
		Registry: s.Registry,
	})
	if errs := rs.Check(input.Values); errs != nil {
		return nil, errs
	}

	status, stamp, err := updateStatus(resp.Status, input.Status, resp.SubmittedAt)
	if err != nil {
		return nil, err
	}

	storedFiles, err := s.storeUploads(ctx, f, files)
	if err != nil {
		return nil, err
	}

	var replaced []string
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		for _, fld := range f.Fields {
			row, ok := valueRow(fld, input.Values, storedFiles)
			if !ok {
				continue
			}
			if prev, found := existing[fld.ID]; found {
				if prev.FilePath != "" && prev.FilePath != row.FilePath {
					replaced = append(replaced, prev.FilePath)
				}
				prev.Value = row.Value
				prev.FilePath = row.FilePath
				if err := tx.Submission.UpdateValue(&prev); err != nil {
					return err
				}
				continue
			}
			row.ResponseID = resp.ID
			if err := tx.Submission.CreateValue(&row); err != nil {
				return err
			}
		}

		resp.Status = status
		resp.SubmittedAt = stamp
		resp.Values = nil
		return tx.Submission.UpdateResponse(&resp)
	})
	if err != nil {
		releaseFiles(s.Store, pathsOf(storedFiles))
		log.Printf("Submission update rolled back: %v", err)
		return nil, ErrPersistence
	}

	// Old files go only after the new rows are committed, so a failed write
	// never loses the previous upload.
	releaseFiles(s.Store, replaced)

	return s.Get(resp.ID)
}

// Review moves a completed response to its terminal status. Any other current
// status is rejected.
func (s *SubmissionService) Review(reviewerID, responseID uint, input submission.ReviewResponseDTO) (*submission.FormResponse, error) {
	newStatus := submission.Status(input.Status)
	if newStatus != submission.StatusApproved && newStatus != submission.StatusRejected {
		return nil, ErrInvalidStatus
	}

	resp, err := s.Repos.Submission.GetResponseByID(responseID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if resp.Status != submission.StatusCompleted {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	resp.Status = newStatus
	resp.ReviewedBy = &reviewerID
	resp.ReviewedAt = &now
	resp.ReviewNotes = input.Notes
	resp.Values = nil

	if err := s.Repos.Submission.UpdateResponse(&resp); err != nil {
		return nil, err
	}
	return s.Get(responseID)
}

func (s *SubmissionService) Get(responseID uint) (*submission.FormResponse, error) {
	resp, err := s.Repos.Submission.GetResponseByID(responseID)
	if err != nil {
		return nil, asNotFound(err)
	}
	return &resp, nil
}

func (s *SubmissionService) List(formID uint, filter repository.ResponseFilter) ([]submission.FormResponse, error) {
	return s.Repos.Submission.ListResponses(formID, filter)
}

// Delete removes the response and its value rows together, then releases any
// referenced files.
func (s *SubmissionService) Delete(responseID uint) error {
	resp, err := s.Repos.Submission.GetResponseByID(responseID)
	if err != nil {
		return asNotFound(err)
	}

	var filePaths []string
	for _, v := range resp.Values {
		if v.FilePath != "" {
			filePaths = append(filePaths, v.FilePath)
		}
	}

	if err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		return tx.Submission.DeleteResponse(resp.ID)
	}); err != nil {
		return err
	}

	releaseFiles(s.Store, filePaths)
	return nil
}

// createStatus resolves the requested status on the create path. Completed
// submissions are stamped with the current time.
func createStatus(requested string) (submission.Status, *time.Time, error) {
	switch submission.Status(requested) {
	case "", submission.StatusInProgress:
		return submission.StatusInProgress, nil, nil
	case submission.StatusPending:
		return submission.StatusPending, nil, nil
	case submission.StatusCompleted:
		now := time.Now()
		return submission.StatusCompleted, &now, nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrInvalidStatus, requested)
}

// updateStatus resolves the status on the update path. submitted_at is
// stamped on the transition to completed only if not already set.
func updateStatus(current submission.Status, requested string, submittedAt *time.Time) (submission.Status, *time.Time, error) {
	switch submission.Status(requested) {
	case "":
		return current, submittedAt, nil
	case submission.StatusPending:
		return submission.StatusPending, submittedAt, nil
	case submission.StatusInProgress:
		return submission.StatusInProgress, submittedAt, nil
	case submission.StatusCompleted:
		if submittedAt == nil {
			now := time.Now()
			submittedAt = &now
		}
		return submission.StatusCompleted, submittedAt, nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrInvalidStatus, requested)
}

// valueRow builds the row for one field from the submitted values or stored
// uploads. Returns false when the field was not answered. Entries in values
// with no matching field_code never reach this point: iteration is over the
// schema's fields, so unknown codes are dropped.
func valueRow(fld form.FormField, values map[string]any, storedFiles map[string]string) (submission.FormResponseValue, bool) {
	if !fld.Active {
		return submission.FormResponseValue{}, false
	}

	if fld.Type == form.FieldTypeFile {
		path, ok := storedFiles[fld.FieldCode]
		if !ok {
			return submission.FormResponseValue{}, false
		}
		value, filePath := submission.FileRefValue(path).EncodeRow()
		return submission.FormResponseValue{FieldID: fld.ID, Value: value, FilePath: filePath}, true
	}

	raw, ok := values[fld.FieldCode]
	if !ok {
		return submission.FormResponseValue{}, false
	}
	sv, ok := submission.FromInput(fld.Type, raw)
	if !ok {
		return submission.FormResponseValue{}, false
	}
	value, filePath := sv.EncodeRow()
	return submission.FormResponseValue{FieldID: fld.ID, Value: value, FilePath: filePath}, true
}

// storeUploads saves every binary upload whose key matches a file field and
// returns the stored path per field_code.
func (s *SubmissionService) storeUploads(ctx context.Context, f form.Form, files map[string]*multipart.FileHeader) (map[string]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	stored := map[string]string{}
	for _, fld := range f.Fields {
		if fld.Type != form.FieldTypeFile || !fld.Active {
			continue
		}
		fh, ok := files[fld.FieldCode]
		if !ok {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		objectName := storage.ObjectName(f.ID, fld.FieldCode, fh.Filename)
		path, err := s.Store.Save(ctx, objectName, fh.Header.Get("Content-Type"), src, fh.Size)
		src.Close()
		if err != nil {
			releaseFiles(s.Store, pathsOf(stored))
			return nil, err
		}
		stored[fld.FieldCode] = path
	}
	return stored, nil
}

func uploadMeta(files map[string]*multipart.FileHeader) map[string]validation.UploadMeta {
	if len(files) == 0 {
		return nil
	}
	meta := make(map[string]validation.UploadMeta, len(files))
	for code, fh := range files {
		meta[code] = validation.UploadMeta{Filename: fh.Filename, Size: fh.Size}
	}
	return meta
}

func pathsOf(stored map[string]string) []string {
	paths := make([]string, 0, len(stored))
	for _, p := range stored {
		paths = append(paths, p)
	}
	return paths
}

func releaseFiles(store storage.FileStore, paths []string) {
	if store == nil {
		return
	}
	ctx := context.Background()
	for _, p := range paths {
		if err := store.Delete(ctx, p); err != nil {
			log.Printf("Failed to release stored file %s: %v", p, err)
		}
	}
}
