package thirteenth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-folha/internal/events"
	"go-folha/internal/messaging/kafka"
	"go-folha/internal/money"
	"go-folha/internal/shared/apperror"
	"go-folha/internal/shared/contextutil"
	"go-folha/internal/taxbracket"
	"go-folha/internal/taxrate"
)

// WithholdingTaxType is the aliquota tipo_imposto consulted for the
// thirteenth-salary withholding table.
const WithholdingTaxType = "IRRF"

var ErrCalculationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Cálculo não encontrado",
	http.StatusNotFound,
)

type Service interface {
	Calculate(ctx context.Context, companyID string, req CalculateThirteenthRequest) (CalculationResponse, error)
	GetAll(ctx context.Context, companyID string) ([]CalculationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (CalculationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  taxrate.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	rates taxrate.Service,
	outbox kafka.OutboxRepository,
	logger *zap.Logger,
) Service {
	return &service{
		db:     db,
		repo:   repo,
		rates:  rates,
		outbox: outbox,
		logger: logger.Named("thirteenth.service"),
	}
}

func (s *service) Calculate(
	ctx context.Context,
	companyID string,
	req CalculateThirteenthRequest,
) (CalculationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return CalculationResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid company id", http.StatusBadRequest)
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return CalculationResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid employee id", http.StatusBadRequest)
	}

	salario, err := money.ParseDecimal(req.Salario)
	if err != nil {
		return CalculationResponse{}, err
	}

	mode := PaymentMode(req.TipoPagamento)
	if req.TipoPagamento == "" {
		mode = ModeIntegral
	}

	table, err := s.bracketTable(ctx, companyID)
	if err != nil {
		return CalculationResponse{}, err
	}

	result, err := Calculate(table, Input{
		EmployeeID:   req.EmployeeID,
		Salary:       salario,
		MonthsWorked: req.MesesTrabalhados,
		Mode:         mode,
	})
	if err != nil {
		return CalculationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CalculationResponse{}, err
	}
	defer tx.Rollback()

	calc := &ThirteenthCalculation{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		EmployeeID:       employeeUUID,
		Salario:          money.Round2(salario),
		MesesTrabalhados: req.MesesTrabalhados,
		TipoPagamento:    string(result.Mode),
		DecimoBruto:      result.GrossThirteenth,
		TaxaPercentual:   result.ApplicableRate,
		ValorRetido:      result.WithheldAmount,
		DecimoLiquido:    result.NetThirteenth,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, calc); err != nil {
		s.logger.Error("persist calculation failed", zap.String("request_id", rid), zap.Error(err))
		return CalculationResponse{}, err
	}

	if s.outbox != nil {
		event := events.ThirteenthCalculatedEvent{
			EventType:     "thirteenth_calculated",
			RequestID:     rid,
			CalculationID: calc.ID.String(),
			CompanyID:     companyID,
			EmployeeID:    req.EmployeeID,
			TipoPagamento: calc.TipoPagamento,
			DecimoBruto:   calc.DecimoBruto.StringFixed(2),
			TaxaPercent:   calc.TaxaPercentual.String(),
			ValorRetido:   calc.ValorRetido.StringFixed(2),
			DecimoLiquido: calc.DecimoLiquido.StringFixed(2),
			OccurredAt:    time.Now().UTC(),
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return CalculationResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "thirteenth_calculation",
			AggregateID:   calc.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ThirteenthCalculatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create calculation outbox persist failed",
				zap.String("calculation_id", calc.ID.String()),
				zap.Error(err),
			)
			return CalculationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return CalculationResponse{}, err
	}

	s.logger.Info("thirteenth calculated",
		zap.String("request_id", rid),
		zap.String("calculation_id", calc.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*calc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]CalculationResponse, error) {
	calcs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]CalculationResponse, len(calcs))
	for i, calc := range calcs {
		resp[i] = mapToResponse(calc)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (CalculationResponse, error) {
	calc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CalculationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*calc), nil
}

// bracketTable prefers the company's own effective aliquota rows and
// falls back to the built-in table when none are configured.
func (s *service) bracketTable(ctx context.Context, companyID string) (taxbracket.Table, error) {
	if s.rates == nil {
		return taxbracket.DefaultTable(), nil
	}

	table, err := s.rates.BracketTable(ctx, companyID, WithholdingTaxType, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if table == nil {
		return taxbracket.DefaultTable(), nil
	}
	return table, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCalculationNotFound
	}
	return err
}

func mapToResponse(calc ThirteenthCalculation) CalculationResponse {
	return CalculationResponse{
		ID:               calc.ID.String(),
		CompanyID:        calc.CompanyID.String(),
		EmployeeID:       calc.EmployeeID.String(),
		Salario:          calc.Salario.StringFixed(2),
		MesesTrabalhados: calc.MesesTrabalhados,
		TipoPagamento:    calc.TipoPagamento,
		DecimoBruto:      calc.DecimoBruto.StringFixed(2),
		TaxaPercentual:   calc.TaxaPercentual.String(),
		ValorRetido:      calc.ValorRetido.StringFixed(2),
		DecimoLiquido:    calc.DecimoLiquido.StringFixed(2),
		CreatedAt:        calc.CreatedAt.UTC().Format(time.RFC3339),
	}
}
