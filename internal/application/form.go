package application

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/repository"
	"github.com/opstrack/forms-go/internal/storage"
	"github.com/opstrack/forms-go/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormService owns form and field administration.
type FormService struct {
	Repos *repository.Repos
	Store storage.FileStore
}

func NewFormService(repos *repository.Repos, store storage.FileStore) *FormService {
	return &FormService{Repos: repos, Store: store}
}

func (s *FormService) CreateForm(input form.CreateFormDTO) (*form.Form, error) {
	if _, err := s.Repos.Form.GetFormByCode(input.Code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fields := make([]form.FormField, 0, len(input.Fields))
	seen := map[string]bool{}
	for _, fd := range input.Fields {
		if seen[fd.FieldCode] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldCode, fd.FieldCode)
		}
		seen[fd.FieldCode] = true

		fld, err := fieldFromDTO(fd)
		if err != nil {
			return nil, err
		}
		fields = append(fields, *fld)
	}

	f := &form.Form{
		Name:         input.Name,
		Code:         input.Code,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		Version:      1,
		Active:       true,
		Fields:       fields,
	}
	if err := s.Repos.Form.CreateForm(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FormService) GetForm(id uint) (*form.Form, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return &f, nil
}

func (s *FormService) ListForms() ([]form.Form, error) {
	return s.Repos.Form.ListForms()
}

func (s *FormService) UpdateForm(id uint, input form.UpdateFormDTO) (*form.Form, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if input.Name != nil {
		f.Name = *input.Name
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.Active != nil {
		f.Active = *input.Active
	}
	if input.DisplayOrder != nil {
		f.DisplayOrder = *input.DisplayOrder
	}
	f.Version++

	if err := s.Repos.Form.UpdateForm(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteForm removes the form, its fields, and every response with its value
// rows in one transaction. Stored files are released after the commit.
func (s *FormService) DeleteForm(id uint) error {
	if _, err := s.Repos.Form.GetFormByID(id); err != nil {
		return asNotFound(err)
	}

	responses, err := s.Repos.Submission.ListResponses(id, repository.ResponseFilter{})
	if err != nil {
		return err
	}

	var filePaths []string
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		for _, resp := range responses {
			values, err := tx.Submission.ListValues(resp.ID)
			if err != nil {
				return err
			}
			for _, v := range values {
				if v.FilePath != "" {
					filePaths = append(filePaths, v.FilePath)
				}
			}
			if err := tx.Submission.DeleteResponse(resp.ID); err != nil {
				return err
			}
		}
		return tx.Form.DeleteForm(id)
	})
	if err != nil {
		return err
	}

	releaseFiles(s.Store, filePaths)
	return nil
}

func (s *FormService) AddField(formID uint, input form.CreateFieldDTO) (*form.FormField, error) {
	if _, err := s.Repos.Form.GetFormByID(formID); err != nil {
		return nil, asNotFound(err)
	}

	count, err := s.Repos.Form.CountFieldCode(formID, input.FieldCode)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldCode, input.FieldCode)
	}

	fld, err := fieldFromDTO(input)
	if err != nil {
		return nil, err
	}
	fld.FormID = formID

	if err := s.Repos.Form.CreateField(fld); err != nil {
		return nil, err
	}
	return fld, nil
}

func (s *FormService) UpdateField(fieldID uint, input form.UpdateFieldDTO) (*form.FormField, error) {
	fld, err := s.Repos.Form.GetFieldByID(fieldID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if input.Label != nil {
		fld.Label = *input.Label
	}
	if input.Required != nil {
		fld.Required = *input.Required
	}
	if input.Options != nil {
		raw, err := json.Marshal(input.Options)
		if err != nil {
			return nil, err
		}
		fld.Options = datatypes.JSON(raw)
	}
	if input.CustomRules != nil {
		raw, err := json.Marshal(input.CustomRules)
		if err != nil {
			return nil, err
		}
		fld.CustomRules = datatypes.JSON(raw)
	}
	if input.FieldOrder != nil {
		fld.FieldOrder = *input.FieldOrder
	}
	if input.Active != nil {
		fld.Active = *input.Active
	}

	if err := s.Repos.Form.UpdateField(&fld); err != nil {
		return nil, err
	}
	return &fld, nil
}

// DeactivateField drops the field from validation and schema projections.
// Already-stored value rows for it are kept.
func (s *FormService) DeactivateField(fieldID uint) (*form.FormField, error) {
	inactive := false
	return s.UpdateField(fieldID, form.UpdateFieldDTO{Active: &inactive})
}

// ValidationSchema projects the compiled rule shape for a form so remote
// callers can pre-validate before submitting. Inactive fields are absent.
func (s *FormService) ValidationSchema(formID uint) (map[string]form.FieldSchema, error) {
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return nil, asNotFound(err)
	}

	rs := validation.Compile(f.Fields, validation.CompileOptions{
		RequireFileOnCreate: true,
	})
	return rs.Schema(), nil
}

func fieldFromDTO(input form.CreateFieldDTO) (*form.FormField, error) {
	t := form.FieldType(input.Type)
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFieldType, input.Type)
	}

	fld := &form.FormField{
		Label:      input.Label,
		FieldCode:  input.FieldCode,
		Type:       t,
		Required:   input.Required,
		FieldOrder: input.FieldOrder,
		Active:     true,
	}

	if input.Options != nil {
		raw, err := json.Marshal(input.Options)
		if err != nil {
			return nil, err
		}
		fld.Options = datatypes.JSON(raw)
	}
	if input.CustomRules != nil {
		raw, err := json.Marshal(input.CustomRules)
		if err != nil {
			return nil, err
		}
		fld.CustomRules = datatypes.JSON(raw)
	}
	return fld, nil
}
