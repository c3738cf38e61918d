package repository

import (
	"time"

	"github.com/opstrack/forms-go/internal/domain/submission"
	"gorm.io/gorm"
)

// ResponseFilter narrows response listings. Zero values mean no filter;
// Limit <= 0 means unbounded.
type ResponseFilter struct {
	Status submission.Status
	From   *time.Time
	To     *time.Time
	Limit  int
}

type SubmissionRepo interface {
	CreateResponse(resp *submission.FormResponse) error
	GetResponseByID(id uint) (submission.FormResponse, error)
	UpdateResponse(resp *submission.FormResponse) error
	DeleteResponse(id uint) error
	ListResponses(formID uint, filter ResponseFilter) ([]submission.FormResponse, error)

	CreateValue(v *submission.FormResponseValue) error
	UpdateValue(v *submission.FormResponseValue) error
	GetValue(responseID, fieldID uint) (submission.FormResponseValue, error)
	ListValues(responseID uint) ([]submission.FormResponseValue, error)
	ListValuesForResponses(responseIDs, fieldIDs []uint) ([]submission.FormResponseValue, error)
	DeleteValues(responseID uint) error

	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}

func (r *DBSubmissionRepo) CreateResponse(resp *submission.FormResponse) error {
	return r.db.Create(resp).Error
}

func (r *DBSubmissionRepo) GetResponseByID(id uint) (submission.FormResponse, error) {
	var resp submission.FormResponse
	err := r.db.
		Preload("Values.Field").
		Preload("Form.Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order asc, id asc")
		}).
		First(&resp, id).Error
	return resp, err
}

func (r *DBSubmissionRepo) UpdateResponse(resp *submission.FormResponse) error {
	return r.db.Save(resp).Error
}

func (r *DBSubmissionRepo) DeleteResponse(id uint) error {
	if err := r.db.Where("response_id = ?", id).Delete(&submission.FormResponseValue{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&submission.FormResponse{}, id).Error
}

func (r *DBSubmissionRepo) ListResponses(formID uint, filter ResponseFilter) ([]submission.FormResponse, error) {
	q := r.db.Where("form_id = ?", formID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("submitted_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("submitted_at <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var resps []submission.FormResponse
	err := q.Order("id asc").Find(&resps).Error
	return resps, err
}

func (r *DBSubmissionRepo) CreateValue(v *submission.FormResponseValue) error {
	return r.db.Create(v).Error
}

func (r *DBSubmissionRepo) UpdateValue(v *submission.FormResponseValue) error {
	return r.db.Save(v).Error
}

func (r *DBSubmissionRepo) GetValue(responseID, fieldID uint) (submission.FormResponseValue, error) {
	var v submission.FormResponseValue
	err := r.db.Where("response_id = ? AND field_id = ?", responseID, fieldID).First(&v).Error
	return v, err
}

func (r *DBSubmissionRepo) ListValues(responseID uint) ([]submission.FormResponseValue, error) {
	var vs []submission.FormResponseValue
	err := r.db.Where("response_id = ?", responseID).Find(&vs).Error
	return vs, err
}

func (r *DBSubmissionRepo) ListValuesForResponses(responseIDs, fieldIDs []uint) ([]submission.FormResponseValue, error) {
	if len(responseIDs) == 0 || len(fieldIDs) == 0 {
		return nil, nil
	}
	var vs []submission.FormResponseValue
	err := r.db.
		Where("response_id IN ? AND field_id IN ?", responseIDs, fieldIDs).
		Find(&vs).Error
	return vs, err
}

func (r *DBSubmissionRepo) DeleteValues(responseID uint) error {
	return r.db.Where("response_id = ?", responseID).Delete(&submission.FormResponseValue{}).Error
}
