package account

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-folha/internal/shared/apperror"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateAccountRequest) (AccountResponse, error)
	GetAll(ctx context.Context, companyID string) ([]AccountResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AccountResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateAccountRequest) (AccountResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	acc, err := entityFromRequest(companyID, req)
	if err != nil {
		return AccountResponse{}, err
	}
	acc.ID = uuid.New()

	if err := qtx.Create(ctx, acc); err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AccountResponse{}, err
	}

	return mapToResponse(*acc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]AccountResponse, error) {
	accounts, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = mapToResponse(acc)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AccountResponse, error) {
	acc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*acc), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateAccountRequest) (AccountResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	updated, err := entityFromRequest(companyID, req)
	if err != nil {
		return AccountResponse{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AccountResponse{}, err
	}

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
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

func entityFromRequest(companyID string, req CreateAccountRequest) (*Account, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}

	return &Account{
		CompanyID:    companyUUID,
		CodigoContas: req.CodigoContas,
		NomeConta:    req.NomeConta,
		TipoConta:    req.TipoConta,
		Nivel:        req.Nivel,
		ContaPai:     req.ContaPai,
		Descricao:    req.Descricao,
	}, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	return err
}

func mapToResponse(acc Account) AccountResponse {
	return AccountResponse{
		ID:           acc.ID.String(),
		CompanyID:    acc.CompanyID.String(),
		CodigoContas: acc.CodigoContas,
		NomeConta:    acc.NomeConta,
		TipoConta:    acc.TipoConta,
		Nivel:        acc.Nivel,
		ContaPai:     acc.ContaPai,
		Descricao:    acc.Descricao,
	}
}
