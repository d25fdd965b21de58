package account

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, acc *Account) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Account, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Account, error)
	Update(ctx context.Context, acc *Account) error
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

func (r *repository) Create(ctx context.Context, acc *Account) error {
	return r.conn(ctx).Create(acc).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Account, error) {
	var accounts []Account
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("codigo_contas ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Account, error) {
	var acc Account
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repository) Update(ctx context.Context, acc *Account) error {
	return r.conn(ctx).Save(acc).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Account{}).Error
}
