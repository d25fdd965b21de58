package position

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, pos *Position) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Position, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Position, error)
	Update(ctx context.Context, pos *Position) error
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.conn(ctx).Create(pos).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Position, error) {
	var positions []Position
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("cargo ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Position, error) {
	var pos Position
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&pos).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return r.conn(ctx).Save(pos).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Position{}).Error
}
