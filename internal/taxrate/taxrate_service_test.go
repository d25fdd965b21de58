package taxrate_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-folha/internal/shared/apperror"
	"go-folha/internal/taxbracket"
	"go-folha/internal/taxrate"
)

type fakeTaxRateRepository struct {
	createFn        func(ctx context.Context, rate *taxrate.TaxRate) error
	findEffectiveFn func(ctx context.Context, companyID, tipoImposto string, at time.Time) ([]taxrate.TaxRate, error)
}

func (f *fakeTaxRateRepository) WithTx(tx *sql.Tx) taxrate.Repository { return f }

func (f *fakeTaxRateRepository) Create(ctx context.Context, rate *taxrate.TaxRate) error {
	if f.createFn != nil {
		return f.createFn(ctx, rate)
	}
	return nil
}

func (f *fakeTaxRateRepository) FindAllByCompany(ctx context.Context, companyID string) ([]taxrate.TaxRate, error) {
	return nil, nil
}

func (f *fakeTaxRateRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*taxrate.TaxRate, error) {
	return nil, nil
}

func (f *fakeTaxRateRepository) FindEffective(ctx context.Context, companyID, tipoImposto string, at time.Time) ([]taxrate.TaxRate, error) {
	if f.findEffectiveFn != nil {
		return f.findEffectiveFn(ctx, companyID, tipoImposto, at)
	}
	return nil, nil
}

func (f *fakeTaxRateRepository) Update(ctx context.Context, rate *taxrate.TaxRate) error { return nil }

func (f *fakeTaxRateRepository) Delete(ctx context.Context, companyID, id string) error { return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestTaxRateService_Create(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeTaxRateRepository{}
	svc := taxrate.NewService(db, repo)

	t.Run("success parses bounds and dates", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, rate *taxrate.TaxRate) error {
			assert.Equal(t, "100.00", rate.FaixaMin.StringFixed(2))
			assert.NotNil(t, rate.FaixaMax)
			assert.Equal(t, "2826.65", rate.FaixaMax.StringFixed(2))
			assert.True(t, rate.Percentual.Equal(dec("7.5")))
			return nil
		}

		resp, err := svc.Create(context.Background(), uuid.New().String(), taxrate.CreateTaxRateRequest{
			TipoImposto: "IRRF",
			FaixaMin:    "100,00",
			FaixaMax:    "2826,65",
			Percentual:  "7,5",
			DataInicio:  "2024-01-01",
			DataFim:     "2024-12-31",
		})
		assert.NoError(t, err)
		assert.Equal(t, "2826.65", resp.FaixaMax)
	})

	t.Run("open top bracket keeps nil max", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, rate *taxrate.TaxRate) error {
			assert.Nil(t, rate.FaixaMax)
			return nil
		}

		resp, err := svc.Create(context.Background(), uuid.New().String(), taxrate.CreateTaxRateRequest{
			TipoImposto: "IRRF",
			FaixaMin:    "4664,68",
			Percentual:  "27,5",
			DataInicio:  "2024-01-01",
			DataFim:     "2024-12-31",
		})
		assert.NoError(t, err)
		assert.Empty(t, resp.FaixaMax)
	})
}

func TestTaxRateService_BracketTable(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeTaxRateRepository{}
	svc := taxrate.NewService(db, repo)

	companyID := uuid.New().String()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("materializes ordered table", func(t *testing.T) {
		repo.findEffectiveFn = func(ctx context.Context, cid, tipo string, got time.Time) ([]taxrate.TaxRate, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, "IRRF", tipo)
			assert.Equal(t, at, got)
			return []taxrate.TaxRate{
				{FaixaMin: dec("100.00"), FaixaMax: decPtr("2826.65"), Percentual: dec("7.5")},
				{FaixaMin: dec("2826.65"), FaixaMax: decPtr("3751.05"), Percentual: dec("15")},
				{FaixaMin: dec("3751.06"), FaixaMax: decPtr("4664.68"), Percentual: dec("22.5")},
				{FaixaMin: dec("4664.68"), FaixaMax: nil, Percentual: dec("27.5")},
			}, nil
		}

		table, err := svc.BracketTable(context.Background(), companyID, "IRRF", at)
		assert.NoError(t, err)
		assert.Len(t, table, 4)

		rate, err := taxbracket.Resolve(table, dec("3000"))
		assert.NoError(t, err)
		assert.True(t, rate.Equal(dec("15")))
	})

	t.Run("no rows means no table", func(t *testing.T) {
		repo.findEffectiveFn = func(ctx context.Context, cid, tipo string, got time.Time) ([]taxrate.TaxRate, error) {
			return nil, nil
		}

		table, err := svc.BracketTable(context.Background(), companyID, "IRRF", at)
		assert.NoError(t, err)
		assert.Nil(t, table)
	})

	t.Run("misconfigured rows are rejected", func(t *testing.T) {
		repo.findEffectiveFn = func(ctx context.Context, cid, tipo string, got time.Time) ([]taxrate.TaxRate, error) {
			return []taxrate.TaxRate{
				{FaixaMin: dec("100.00"), FaixaMax: decPtr("2826.65"), Percentual: dec("7.5")},
			}, nil
		}

		_, err := svc.BracketTable(context.Background(), companyID, "IRRF", at)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, taxbracket.ErrInvalidTable.Code, appErr.Code)
	})
}
