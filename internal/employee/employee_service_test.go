package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-folha/internal/employee"
	employeeerrors "go-folha/internal/employee/errors"
)

type fakeEmployeeRepository struct {
	withTxFn             func(tx *sql.Tx) employee.Repository
	createFn             func(ctx context.Context, emp *employee.Employee) error
	findAllByCompanyFn   func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn             func(ctx context.Context, emp *employee.Employee) error
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Nome:         "Maria da Silva",
		CPF:          "123.456.789-09",
		Telefone:     "(44) 3222-1010",
		Celular:      "(44) 99222-1010",
		CEP:          "87000-000",
		Estado:       "PR",
		EstadoCivil:  "casada",
		DataNasc:     "1990-05-20",
		Salario:      "2500.00",
		DataAdmissao: "2024-01-15",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.createFn = func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, companyID, emp.CompanyID.String())
			assert.Equal(t, "Maria da Silva", emp.Nome)
			assert.Equal(t, "2500.00", emp.Salario.StringFixed(2))
			assert.Equal(t, "2024-01-15", emp.DataAdmissao.Format("2006-01-02"))
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, validCreateRequest())
		assert.NoError(t, err)
		assert.Equal(t, "Maria da Silva", resp.Nome)
		assert.Equal(t, "2500.00", resp.Salario)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid company id", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, "not-a-uuid", validCreateRequest())
		assert.Error(t, err)
	})

	t.Run("non-positive salary", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		req := validCreateRequest()
		req.Salario = "0"
		_, err := deps.service.Create(ctx, companyID, req)
		assert.Error(t, err)
	})

	t.Run("duplicate cpf mapped", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, emp *employee.Employee) error {
			return errors.New(`duplicate key value violates unique constraint "uq_employee_cpf"`)
		}

		_, err := deps.service.Create(ctx, companyID, validCreateRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrCPFAlreadyExists)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps.repo.findAllByCompanyFn = func(ctx context.Context, cid string) ([]employee.Employee, error) {
			assert.Equal(t, companyID, cid)
			return []employee.Employee{
				{ID: uuid.New(), Nome: "Ana"},
				{ID: uuid.New(), Nome: "Bruno"},
			}, nil
		}

		resp, err := deps.service.GetAll(context.Background(), companyID)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Ana", resp[0].Nome)
	})

	t.Run("repo error", func(t *testing.T) {
		deps.repo.findAllByCompanyFn = func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return nil, errors.New("db down")
		}

		_, err := deps.service.GetAll(context.Background(), companyID)
		assert.Error(t, err)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	companyID := uuid.New().String()
	empID := uuid.New()

	t.Run("success keeps identity", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: empID}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, empID, emp.ID)
			return nil
		}

		resp, err := deps.service.Update(context.Background(), companyID, empID.String(), validCreateRequest())
		assert.NoError(t, err)
		assert.Equal(t, empID.String(), resp.ID)
	})

	t.Run("not found mapped", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(context.Background(), companyID, empID.String(), validCreateRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	t.Run("success", func(t *testing.T) {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		called := false
		deps.repo.deleteFn = func(ctx context.Context, companyID, id string) error {
			called = true
			return nil
		}

		assert.NoError(t, deps.service.Delete(context.Background(), uuid.New().String(), uuid.New().String()))
		assert.True(t, called)
	})
}
