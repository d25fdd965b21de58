package employee

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-folha/internal/money"
	"go-folha/internal/shared/apperror"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := entityFromRequest(companyID, req)
	if err != nil {
		return EmployeeResponse{}, err
	}
	emp.ID = uuid.New()

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeResponse, error) {
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	updated, err := entityFromRequest(companyID, req)
	if err != nil {
		return EmployeeResponse{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*updated), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func entityFromRequest(companyID string, req CreateEmployeeRequest) (*Employee, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}

	salario, err := parseSalario(req.Salario)
	if err != nil {
		return nil, err
	}

	dataNasc, err := parseDate(req.DataNasc)
	if err != nil {
		return nil, err
	}
	dataAdmissao, err := parseDate(req.DataAdmissao)
	if err != nil {
		return nil, err
	}

	return &Employee{
		CompanyID:    companyUUID,
		Nome:         req.Nome,
		CPF:          req.CPF,
		Telefone:     req.Telefone,
		Celular:      req.Celular,
		Email:        req.Email,
		CEP:          req.CEP,
		Endereco:     req.Endereco,
		Bairro:       req.Bairro,
		Cidade:       req.Cidade,
		Estado:       req.Estado,
		EstadoCivil:  req.EstadoCivil,
		DataNasc:     dataNasc,
		Sexo:         req.Sexo,
		Escolaridade: req.Escolaridade,
		Naturalidade: req.Naturalidade,
		PIS:          req.PIS,
		Identidade:   req.Identidade,
		CTPS:         req.CTPS,
		Serie:        req.Serie,
		Salario:      salario,
		DataAdmissao: dataAdmissao,
	}, nil
}

func parseSalario(v string) (decimal.Decimal, error) {
	d, err := money.ParseDecimal(v)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, apperror.New(
			apperror.CodeInvalidSalary,
			"salário deve ser maior que zero",
			http.StatusBadRequest,
		)
	}
	return money.Round2(d), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperror.New(
			apperror.CodeInvalidInput,
			"data inválida, formato esperado: YYYY-MM-DD",
			http.StatusBadRequest,
		)
	}
	return t, nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID.String(),
		CompanyID:    emp.CompanyID.String(),
		Nome:         emp.Nome,
		CPF:          emp.CPF,
		Telefone:     emp.Telefone,
		Celular:      emp.Celular,
		Email:        emp.Email,
		CEP:          emp.CEP,
		Endereco:     emp.Endereco,
		Bairro:       emp.Bairro,
		Cidade:       emp.Cidade,
		Estado:       emp.Estado,
		EstadoCivil:  emp.EstadoCivil,
		DataNasc:     emp.DataNasc.Format("2006-01-02"),
		Sexo:         emp.Sexo,
		Escolaridade: emp.Escolaridade,
		Naturalidade: emp.Naturalidade,
		PIS:          emp.PIS,
		Identidade:   emp.Identidade,
		CTPS:         emp.CTPS,
		Serie:        emp.Serie,
		Salario:      emp.Salario.StringFixed(2),
		DataAdmissao: emp.DataAdmissao.Format("2006-01-02"),
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		resp[i] = mapToResponse(emp)
	}
	return resp
}
