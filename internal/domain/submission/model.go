package submission

import (
	"time"

	"github.com/opstrack/forms-go/internal/domain/form"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
)

// Editable reports whether response values may still be changed.
func (s Status) Editable() bool {
	return s == StatusPending || s == StatusInProgress
}

// Terminal reports whether the status admits no further transition.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type FormResponse struct {
	gorm.Model
	FormID      uint                `json:"form_id" gorm:"index"`
	UserID      uint                `json:"user_id"`
	BatchID     *uint               `json:"batch_id"` // Optional production lot reference
	Status      Status              `json:"status" gorm:"default:'in_progress'"`
	SubmittedAt *time.Time          `json:"submitted_at"`
	ReviewedBy  *uint               `json:"reviewed_by"`
	ReviewedAt  *time.Time          `json:"reviewed_at"`
	ReviewNotes string              `json:"review_notes"`
	Form        form.Form           `json:"form" gorm:"foreignKey:FormID"`
	Values      []FormResponseValue `json:"values" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
}

type FormResponseValue struct {
	gorm.Model
	ResponseID uint           `json:"response_id" gorm:"index;uniqueIndex:idx_response_field"`
	FieldID    uint           `json:"field_id" gorm:"uniqueIndex:idx_response_field"`
	Value      string         `json:"value"`
	FilePath   string         `json:"file_path"`
	Field      form.FormField `json:"field" gorm:"foreignKey:FieldID"`
}
