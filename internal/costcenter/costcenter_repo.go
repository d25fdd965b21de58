package costcenter

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cc *CostCenter) error
	FindAllByCompany(ctx context.Context, companyID string) ([]CostCenter, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*CostCenter, error)
	Update(ctx context.Context, cc *CostCenter) error
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

func (r *repository) Create(ctx context.Context, cc *CostCenter) error {
	return r.conn(ctx).Create(cc).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]CostCenter, error) {
	var centers []CostCenter
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("codigo ASC").
		Find(&centers).Error
	return centers, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*CostCenter, error) {
	var cc CostCenter
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&cc).Error
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *repository) Update(ctx context.Context, cc *CostCenter) error {
	return r.conn(ctx).Save(cc).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&CostCenter{}).Error
}
