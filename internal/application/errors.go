package application

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrFormNotActive      = errors.New("form is not active")
	ErrInvalidTransition  = errors.New("status does not permit this operation")
	ErrDuplicateCode      = errors.New("form code already in use")
	ErrDuplicateFieldCode = errors.New("field_code already in use on this form")
	ErrInvalidFieldType   = errors.New("unsupported field type")
	ErrInvalidStatus      = errors.New("invalid status value")
	// ErrPersistence reports a storage failure while saving valid input,
	// distinct from validation failure.
	ErrPersistence = errors.New("failed to persist submission")
)

// asNotFound translates gorm's record miss into the service-level sentinel.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
