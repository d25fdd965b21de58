package company

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp := entityFromRequest(req)
	comp.ID = uuid.New()

	if err := qtx.Create(ctx, comp); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}

	return mapToResponse(*comp), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	comps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]CompanyResponse, len(comps))
	for i, comp := range comps {
		resp[i] = mapToResponse(comp)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	updated := entityFromRequest(req)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CompanyResponse{}, err
	}

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func entityFromRequest(req CreateCompanyRequest) *Company {
	return &Company{
		CNPJ:              req.CNPJ,
		NomeRazao:         req.NomeRazao,
		NomeFantasia:      req.NomeFantasia,
		Endereco:          req.Endereco,
		Bairro:            req.Bairro,
		Cidade:            req.Cidade,
		Estado:            req.Estado,
		CEP:               req.CEP,
		Telefone:          req.Telefone,
		InscricaoEstadual: req.InscricaoEstadual,
	}
}

func mapToResponse(comp Company) CompanyResponse {
	return CompanyResponse{
		ID:                comp.ID.String(),
		CNPJ:              comp.CNPJ,
		NomeRazao:         comp.NomeRazao,
		NomeFantasia:      comp.NomeFantasia,
		Endereco:          comp.Endereco,
		Bairro:            comp.Bairro,
		Cidade:            comp.Cidade,
		Estado:            comp.Estado,
		CEP:               comp.CEP,
		Telefone:          comp.Telefone,
		InscricaoEstadual: comp.InscricaoEstadual,
	}
}
