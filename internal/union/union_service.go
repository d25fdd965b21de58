package union

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
	Create(ctx context.Context, companyID string, req CreateUnionRequest) (UnionResponse, error)
	GetAll(ctx context.Context, companyID string) ([]UnionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UnionResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateUnionRequest) (UnionResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUnionRequest) (UnionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UnionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	un, err := entityFromRequest(companyID, req)
	if err != nil {
		return UnionResponse{}, err
	}
	un.ID = uuid.New()

	if err := qtx.Create(ctx, un); err != nil {
		return UnionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UnionResponse{}, err
	}

	return mapToResponse(*un), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]UnionResponse, error) {
	unions, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]UnionResponse, len(unions))
	for i, un := range unions {
		resp[i] = mapToResponse(un)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UnionResponse, error) {
	un, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return UnionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*un), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateUnionRequest) (UnionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UnionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return UnionResponse{}, mapRepositoryError(err)
	}

	updated, err := entityFromRequest(companyID, req)
	if err != nil {
		return UnionResponse{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return UnionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UnionResponse{}, err
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

func entityFromRequest(companyID string, req CreateUnionRequest) (*Union, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}

	return &Union{
		CompanyID: companyUUID,
		Nome:      req.Nome,
		Telefone:  req.Telefone,
	}, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnionNotFound
	}
	return err
}

func mapToResponse(un Union) UnionResponse {
	return UnionResponse{
		ID:        un.ID.String(),
		CompanyID: un.CompanyID.String(),
		Nome:      un.Nome,
		Telefone:  un.Telefone,
	}
}
