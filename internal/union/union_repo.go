package union

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, un *Union) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Union, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Union, error)
	Update(ctx context.Context, un *Union) error
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, un *Union) error {
	return r.conn(ctx).Create(un).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Union, error) {
	var unions []Union
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("nome ASC").
		Find(&unions).Error
	return unions, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Union, error) {
	var un Union
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&un).Error
	if err != nil {
		return nil, err
	}
	return &un, nil
}

func (r *repository) Update(ctx context.Context, un *Union) error {
	return r.conn(ctx).Save(un).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Union{}).Error
}
