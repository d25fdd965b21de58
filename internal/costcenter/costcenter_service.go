package costcenter

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
	Create(ctx context.Context, companyID string, req CreateCostCenterRequest) (CostCenterResponse, error)
	GetAll(ctx context.Context, companyID string) ([]CostCenterResponse, error)
	GetByID(ctx context.Context, companyID, id string) (CostCenterResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateCostCenterRequest) (CostCenterResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateCostCenterRequest) (CostCenterResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CostCenterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cc, err := entityFromRequest(companyID, req)
	if err != nil {
		return CostCenterResponse{}, err
	}
	cc.ID = uuid.New()

	if err := qtx.Create(ctx, cc); err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CostCenterResponse{}, err
	}

	return mapToResponse(*cc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]CostCenterResponse, error) {
	centers, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]CostCenterResponse, len(centers))
	for i, cc := range centers {
		resp[i] = mapToResponse(cc)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (CostCenterResponse, error) {
	cc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*cc), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateCostCenterRequest) (CostCenterResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CostCenterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	updated, err := entityFromRequest(companyID, req)
	if err != nil {
		return CostCenterResponse{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return CostCenterResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CostCenterResponse{}, err
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

func entityFromRequest(companyID string, req CreateCostCenterRequest) (*CostCenter, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}

	return &CostCenter{
		CompanyID: companyUUID,
		Codigo:    req.Codigo,
		Descricao: req.Descricao,
	}, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCostCenterNotFound
	}
	return err
}

func mapToResponse(cc CostCenter) CostCenterResponse {
	return CostCenterResponse{
		ID:        cc.ID.String(),
		CompanyID: cc.CompanyID.String(),
		Codigo:    cc.Codigo,
		Descricao: cc.Descricao,
	}
}
