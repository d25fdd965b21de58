package taxrate

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rate *TaxRate) error
	FindAllByCompany(ctx context.Context, companyID string) ([]TaxRate, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*TaxRate, error)
	FindEffective(ctx context.Context, companyID, tipoImposto string, at time.Time) ([]TaxRate, error)
	Update(ctx context.Context, rate *TaxRate) error
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

func (r *repository) Create(ctx context.Context, rate *TaxRate) error {
	return r.conn(ctx).Create(rate).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]TaxRate, error) {
	var rates []TaxRate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("tipo_imposto ASC, faixa_min ASC").
		Find(&rates).Error
	return rates, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*TaxRate, error) {
	var rate TaxRate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// FindEffective returns the brackets of one tax type in force at a
// given date, ordered by their lower bound.
func (r *repository) FindEffective(ctx context.Context, companyID, tipoImposto string, at time.Time) ([]TaxRate, error) {
	var rates []TaxRate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("tipo_imposto = ?", tipoImposto).
		Where("data_inicio <= ? AND data_fim >= ?", at, at).
		Order("faixa_min ASC").
		Find(&rates).Error
	return rates, err
}

func (r *repository) Update(ctx context.Context, rate *TaxRate) error {
	return r.conn(ctx).Save(rate).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&TaxRate{}).Error
}
