package position

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-folha/internal/money"
	"go-folha/internal/shared/apperror"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PositionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PositionResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePositionRequest) (PositionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos, err := entityFromRequest(companyID, req)
	if err != nil {
		return PositionResponse{}, err
	}
	pos.ID = uuid.New()

	if err := qtx.Create(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PositionResponse, error) {
	positions, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PositionResponse, len(positions))
	for i, pos := range positions {
		resp[i] = mapToResponse(pos)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PositionResponse, error) {
	pos, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*pos), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePositionRequest) (PositionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	updated, err := entityFromRequest(companyID, req)
	if err != nil {
		return PositionResponse{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
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

func entityFromRequest(companyID string, req CreatePositionRequest) (*Position, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}

	salario, err := money.ParseDecimal(req.Salario)
	if err != nil {
		return nil, err
	}

	return &Position{
		CompanyID: companyUUID,
		Cargo:     req.Cargo,
		Salario:   money.Round2(salario),
	}, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPositionNotFound
	}
	return err
}

func mapToResponse(pos Position) PositionResponse {
	return PositionResponse{
		ID:        pos.ID.String(),
		CompanyID: pos.CompanyID.String(),
		Cargo:     pos.Cargo,
		Salario:   pos.Salario.StringFixed(2),
	}
}
