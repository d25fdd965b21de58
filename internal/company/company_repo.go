package company

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, comp *Company) error
	FindAll(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, comp *Company) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds the statement to the transaction set via WithTx.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.conn(ctx).Create(comp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var comps []Company
	err := r.conn(ctx).Order("nome_razao ASC").Find(&comps).Error
	return comps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var comp Company
	err := r.conn(ctx).Where("id = ?", id).First(&comp).Error
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.conn(ctx).Save(comp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&Company{}).Error
}
