package taxrate

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-folha/internal/money"
	"go-folha/internal/shared/apperror"
	"go-folha/internal/taxbracket"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateTaxRateRequest) (TaxRateResponse, error)
	GetAll(ctx context.Context, companyID string) ([]TaxRateResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TaxRateResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateTaxRateRequest) (TaxRateResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	// BracketTable materializes the company's progressive table for one
	// tax type at a reference date. No rows means the company has not
	// configured the tax, and the caller decides the fallback.
	BracketTable(ctx context.Context, companyID, tipoImposto string, at time.Time) (taxbracket.Table, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateTaxRateRequest) (TaxRateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaxRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rate, err := entityFromRequest(companyID, req)
	if err != nil {
		return TaxRateResponse{}, err
	}
	rate.ID = uuid.New()

	if err := qtx.Create(ctx, rate); err != nil {
		return TaxRateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TaxRateResponse{}, err
	}

	return mapToResponse(*rate), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]TaxRateResponse, error) {
	rates, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]TaxRateResponse, len(rates))
	for i, rate := range rates {
		resp[i] = mapToResponse(rate)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TaxRateResponse, error) {
	rate, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TaxRateResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*rate), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateTaxRateRequest) (TaxRateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TaxRateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TaxRateResponse{}, mapRepositoryError(err)
	}

	updated, err := entityFromRequest(companyID, req)
	if err != nil {
		return TaxRateResponse{}, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := qtx.Update(ctx, updated); err != nil {
		return TaxRateResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TaxRateResponse{}, err
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

func (s *service) BracketTable(ctx context.Context, companyID, tipoImposto string, at time.Time) (taxbracket.Table, error) {
	rates, err := s.repo.FindEffective(ctx, companyID, tipoImposto, at)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(rates) == 0 {
		return nil, nil
	}

	table := make(taxbracket.Table, len(rates))
	for i, rate := range rates {
		table[i] = taxbracket.Bracket{
			Min:  rate.FaixaMin,
			Max:  rate.FaixaMax,
			Rate: rate.Percentual,
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func entityFromRequest(companyID string, req CreateTaxRateRequest) (*TaxRate, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}

	faixaMin, err := money.ParseDecimal(req.FaixaMin)
	if err != nil {
		return nil, err
	}

	rate := &TaxRate{
		CompanyID:   companyUUID,
		TipoImposto: req.TipoImposto,
		FaixaMin:    money.Round2(faixaMin),
		Descricao:   req.Descricao,
	}

	if req.FaixaMax != "" {
		faixaMax, err := money.ParseDecimal(req.FaixaMax)
		if err != nil {
			return nil, err
		}
		rounded := money.Round2(faixaMax)
		rate.FaixaMax = &rounded
	}

	percentual, err := money.ParseDecimal(req.Percentual)
	if err != nil {
		return nil, err
	}
	rate.Percentual = percentual

	rate.DataInicio, err = parseDate(req.DataInicio)
	if err != nil {
		return nil, err
	}
	rate.DataFim, err = parseDate(req.DataFim)
	if err != nil {
		return nil, err
	}

	return rate, nil
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

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaxRateNotFound
	}
	return err
}

func mapToResponse(rate TaxRate) TaxRateResponse {
	resp := TaxRateResponse{
		ID:          rate.ID.String(),
		CompanyID:   rate.CompanyID.String(),
		TipoImposto: rate.TipoImposto,
		FaixaMin:    rate.FaixaMin.StringFixed(2),
		Percentual:  rate.Percentual.String(),
		DataInicio:  rate.DataInicio.Format("2006-01-02"),
		DataFim:     rate.DataFim.Format("2006-01-02"),
		Descricao:   rate.Descricao,
	}
	if rate.FaixaMax != nil {
		resp.FaixaMax = rate.FaixaMax.StringFixed(2)
	}
	return resp
}
