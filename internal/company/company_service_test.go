package company_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-folha/internal/company"
	companyerrors "go-folha/internal/company/errors"
)

type fakeCompanyRepository struct {
	createFn   func(ctx context.Context, comp *company.Company) error
	findAllFn  func(ctx context.Context) ([]company.Company, error)
	findByIDFn func(ctx context.Context, id string) (*company.Company, error)
	updateFn   func(ctx context.Context, comp *company.Company) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeCompanyRepository) WithTx(tx *sql.Tx) company.Repository { return f }

func (f *fakeCompanyRepository) Create(ctx context.Context, comp *company.Company) error {
	if f.createFn != nil {
		return f.createFn(ctx, comp)
	}
	return nil
}

func (f *fakeCompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeCompanyRepository) Update(ctx context.Context, comp *company.Company) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, comp)
	}
	return nil
}

func (f *fakeCompanyRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func validCompanyRequest() company.CreateCompanyRequest {
	return company.CreateCompanyRequest{
		CNPJ:         "12.345.678/0001-95",
		NomeRazao:    "Acme Serviços Ltda",
		NomeFantasia: "Acme",
		Endereco:     "Rua das Flores, 100",
		Bairro:       "Centro",
		Cidade:       "Maringá",
		Estado:       "PR",
		CEP:          "87000-000",
		Telefone:     "(44) 3222-1010",
	}
}

func TestCompanyService_Create(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeCompanyRepository{}
	svc := company.NewService(db, repo)

	t.Run("success", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, comp *company.Company) error {
			assert.NotEqual(t, uuid.Nil, comp.ID)
			assert.Equal(t, "Acme Serviços Ltda", comp.NomeRazao)
			return nil
		}

		resp, err := svc.Create(context.Background(), validCompanyRequest())
		assert.NoError(t, err)
		assert.Equal(t, "12.345.678/0001-95", resp.CNPJ)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate cnpj mapped", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.createFn = func(ctx context.Context, comp *company.Company) error {
			return errors.New(`duplicate key value violates unique constraint "uq_company_cnpj"`)
		}

		_, err := svc.Create(context.Background(), validCompanyRequest())
		assert.ErrorIs(t, err, companyerrors.ErrCNPJAlreadyExists)
	})
}

func TestCompanyService_GetByID(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeCompanyRepository{}
	svc := company.NewService(db, repo)

	t.Run("not found mapped", func(t *testing.T) {
		repo.findByIDFn = func(ctx context.Context, id string) (*company.Company, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := svc.GetByID(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, gotID string) (*company.Company, error) {
			assert.Equal(t, id.String(), gotID)
			return &company.Company{ID: id, NomeRazao: "Acme Serviços Ltda"}, nil
		}

		resp, err := svc.GetByID(context.Background(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})
}
