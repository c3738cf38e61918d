package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form       FormRepo
	Submission SubmissionRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:       NewFormRepo(db),
		Submission: NewSubmissionRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:       r.Form.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a single transaction; any error rolls back every
// write made through the transactional repos. Without a connection (unit
// tests with mock repos) fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
