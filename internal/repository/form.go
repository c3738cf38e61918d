package repository

import (
	"github.com/opstrack/forms-go/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	CreateForm(f *form.Form) error
	GetFormByID(id uint) (form.Form, error)
	GetFormByCode(code string) (form.Form, error)
	ListForms() ([]form.Form, error)
	UpdateForm(f *form.Form) error
	DeleteForm(id uint) error

	CreateField(fld *form.FormField) error
	GetFieldByID(id uint) (form.FormField, error)
	UpdateField(fld *form.FormField) error
	ListFields(formID uint) ([]form.FormField, error)
	CountFieldCode(formID uint, fieldCode string) (int64, error)

	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order("field_order asc, id asc")
	}).First(&f, id).Error
	return f, err
}

func (r *DBFormRepo) GetFormByCode(code string) (form.Form, error) {
	var f form.Form
	err := r.db.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order("field_order asc, id asc")
	}).Where("code = ?", code).First(&f).Error
	return f, err
}

func (r *DBFormRepo) ListForms() ([]form.Form, error) {
	var forms []form.Form
	err := r.db.Order("display_order asc, id asc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) UpdateForm(f *form.Form) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) DeleteForm(id uint) error {
	if err := r.db.Where("form_id = ?", id).Delete(&form.FormField{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&form.Form{}, id).Error
}

func (r *DBFormRepo) CreateField(fld *form.FormField) error {
	return r.db.Create(fld).Error
}

func (r *DBFormRepo) GetFieldByID(id uint) (form.FormField, error) {
	var fld form.FormField
	err := r.db.First(&fld, id).Error
	return fld, err
}

func (r *DBFormRepo) UpdateField(fld *form.FormField) error {
	return r.db.Save(fld).Error
}

func (r *DBFormRepo) ListFields(formID uint) ([]form.FormField, error) {
	var fields []form.FormField
	err := r.db.Where("form_id = ?", formID).Order("field_order asc, id asc").Find(&fields).Error
	return fields, err
}

func (r *DBFormRepo) CountFieldCode(formID uint, fieldCode string) (int64, error) {
	var count int64
	err := r.db.Model(&form.FormField{}).
		Where("form_id = ? AND field_code = ?", formID, fieldCode).
		Count(&count).Error
	return count, err
}
