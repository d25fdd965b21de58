package thirteenth

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, calc *ThirteenthCalculation) error
	FindAllByCompany(ctx context.Context, companyID string) ([]ThirteenthCalculation, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*ThirteenthCalculation, error)
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

// conn binds the statement to the transaction set via WithTx, so the
// calculation row commits and rolls back with the outbox event.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, calc *ThirteenthCalculation) error {
	return r.conn(ctx).Create(calc).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]ThirteenthCalculation, error) {
	var calcs []ThirteenthCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&calcs).Error
	return calcs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*ThirteenthCalculation, error) {
	var calc ThirteenthCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&calc).Error
	if err != nil {
		return nil, err
	}
	return &calc, nil
}
