package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-folha/internal/bootstrap"
	"go-folha/internal/events"
)

// ConsumeThirteenthCalculated turns published calculation events into
// audit entries. Decode failures are committed and skipped; audit
// writes are best-effort, so the only retried failures are fetch and
// commit errors.
func ConsumeThirteenthCalculated(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.thirteenth_calculated")
	log.Info("thirteenth calculated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("thirteenth calculated consumer stopped")
				return
			}
			log.Error("fetch thirteenth calculated message failed", zap.Error(err))
			continue
		}

		var event events.ThirteenthCalculatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode thirteenth calculated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "THIRTEENTH_CALCULATED",
			Message: "Décimo terceiro calculado",
			Meta: map[string]any{
				"request_id":      event.RequestID,
				"calculation_id":  event.CalculationID,
				"company_id":      event.CompanyID,
				"employee_id":     event.EmployeeID,
				"tipo_pagamento":  event.TipoPagamento,
				"decimo_bruto":    event.DecimoBruto,
				"taxa_percentual": event.TaxaPercent,
				"valor_retido":    event.ValorRetido,
				"decimo_liquido":  event.DecimoLiquido,
				"occurred_at":     event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit thirteenth calculated message failed", zap.Error(err))
			continue
		}

		log.Info("thirteenth calculation audited",
			zap.String("calculation_id", event.CalculationID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
