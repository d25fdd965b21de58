package thirteenth_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-folha/internal/events"
	"go-folha/internal/messaging/kafka"
	"go-folha/internal/taxbracket"
	"go-folha/internal/taxrate"
	"go-folha/internal/thirteenth"
)

type fakeCalculationRepository struct {
	createFn func(ctx context.Context, calc *thirteenth.ThirteenthCalculation) error
}

func (f *fakeCalculationRepository) WithTx(tx *sql.Tx) thirteenth.Repository { return f }

func (f *fakeCalculationRepository) Create(ctx context.Context, calc *thirteenth.ThirteenthCalculation) error {
	if f.createFn != nil {
		return f.createFn(ctx, calc)
	}
	return nil
}

func (f *fakeCalculationRepository) FindAllByCompany(ctx context.Context, companyID string) ([]thirteenth.ThirteenthCalculation, error) {
	return nil, nil
}

func (f *fakeCalculationRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*thirteenth.ThirteenthCalculation, error) {
	return nil, nil
}

type fakeRateService struct {
	bracketTableFn func(ctx context.Context, companyID, tipoImposto string, at time.Time) (taxbracket.Table, error)
}

func (f *fakeRateService) Create(ctx context.Context, companyID string, req taxrate.CreateTaxRateRequest) (taxrate.TaxRateResponse, error) {
	return taxrate.TaxRateResponse{}, nil
}

func (f *fakeRateService) GetAll(ctx context.Context, companyID string) ([]taxrate.TaxRateResponse, error) {
	return nil, nil
}

func (f *fakeRateService) GetByID(ctx context.Context, companyID, id string) (taxrate.TaxRateResponse, error) {
	return taxrate.TaxRateResponse{}, nil
}

func (f *fakeRateService) Update(ctx context.Context, companyID, id string, req taxrate.UpdateTaxRateRequest) (taxrate.TaxRateResponse, error) {
	return taxrate.TaxRateResponse{}, nil
}

func (f *fakeRateService) Delete(ctx context.Context, companyID, id string) error { return nil }

func (f *fakeRateService) BracketTable(ctx context.Context, companyID, tipoImposto string, at time.Time) (taxbracket.Table, error) {
	if f.bracketTableFn != nil {
		return f.bracketTableFn(ctx, companyID, tipoImposto, at)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func TestCalculationService_Calculate(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("persists result and queues outbox event in one transaction", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeCalculationRepository{}
		outbox := &fakeOutboxRepository{}
		rates := &fakeRateService{}

		var queued kafka.OutboxEvent
		outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			queued = event
			return nil
		}

		svc := thirteenth.NewService(db, repo, rates, outbox, zap.NewNop())

		resp, err := svc.Calculate(context.Background(), companyID, thirteenth.CalculateThirteenthRequest{
			EmployeeID:       employeeID,
			Salario:          "3000.00",
			MesesTrabalhados: 6,
			TipoPagamento:    "integral",
		})
		assert.NoError(t, err)

		assert.Equal(t, "1500.00", resp.DecimoBruto)
		assert.Equal(t, "7.5", resp.TaxaPercentual)
		assert.Equal(t, "112.50", resp.ValorRetido)
		assert.Equal(t, "1387.50", resp.DecimoLiquido)

		assert.Equal(t, events.ThirteenthCalculatedTopic, queued.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, queued.Status)

		var event events.ThirteenthCalculatedEvent
		assert.NoError(t, json.Unmarshal(queued.Payload, &event))
		assert.Equal(t, "thirteenth_calculated", event.EventType)
		assert.Equal(t, "1387.50", event.DecimoLiquido)

		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("company table takes precedence over the default", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		flat := taxbracket.Table{
			{Min: dec(t, "0"), Max: nil, Rate: dec(t, "10")},
		}
		rates := &fakeRateService{
			bracketTableFn: func(ctx context.Context, cid, tipo string, at time.Time) (taxbracket.Table, error) {
				assert.Equal(t, thirteenth.WithholdingTaxType, tipo)
				return flat, nil
			},
		}

		svc := thirteenth.NewService(db, &fakeCalculationRepository{}, rates, &fakeOutboxRepository{}, zap.NewNop())

		resp, err := svc.Calculate(context.Background(), companyID, thirteenth.CalculateThirteenthRequest{
			EmployeeID:       employeeID,
			Salario:          "3000.00",
			MesesTrabalhados: 6,
			TipoPagamento:    "integral",
		})
		assert.NoError(t, err)
		assert.Equal(t, "10", resp.TaxaPercentual)
		assert.Equal(t, "150.00", resp.ValorRetido)
	})

	t.Run("empty payment mode defaults to integral", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		svc := thirteenth.NewService(db, &fakeCalculationRepository{}, &fakeRateService{}, &fakeOutboxRepository{}, zap.NewNop())

		resp, err := svc.Calculate(context.Background(), companyID, thirteenth.CalculateThirteenthRequest{
			EmployeeID:       employeeID,
			Salario:          "2500,00",
			MesesTrabalhados: 7,
		})
		assert.NoError(t, err)
		assert.Equal(t, "integral", resp.TipoPagamento)
		assert.Equal(t, "1458.33", resp.DecimoBruto)
		assert.Equal(t, "1348.96", resp.DecimoLiquido)
	})

	t.Run("calculator errors abort before any write", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeCalculationRepository{
			createFn: func(ctx context.Context, calc *thirteenth.ThirteenthCalculation) error {
				t.Fatal("repository must not be touched on input errors")
				return nil
			},
		}

		svc := thirteenth.NewService(db, repo, &fakeRateService{}, &fakeOutboxRepository{}, zap.NewNop())

		_, err = svc.Calculate(context.Background(), companyID, thirteenth.CalculateThirteenthRequest{
			EmployeeID:       employeeID,
			Salario:          "3000.00",
			MesesTrabalhados: 13,
			TipoPagamento:    "integral",
		})
		assert.ErrorIs(t, err, thirteenth.ErrInvalidMonthsWorked)
	})
}
