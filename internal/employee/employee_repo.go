package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"go-folha/internal/tenant"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Create(emp).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("nome ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var emp Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Save(emp).Error
}

// Delete is a gorm soft delete: the row keeps its data and gains a
// deleted_at timestamp.
func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Employee{}).Error
}
