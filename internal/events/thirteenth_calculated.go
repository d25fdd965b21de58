package events

import "time"

const ThirteenthCalculatedTopic = "folha.thirteenth.calculated.v1"

// ThirteenthCalculatedEvent is emitted after a thirteenth-salary
// calculation is persisted. Amounts travel as fixed-point strings so
// consumers never touch binary floats.
type ThirteenthCalculatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	CalculationID string    `json:"calculation_id"`
	CompanyID     string    `json:"company_id"`
	EmployeeID    string    `json:"employee_id"`
	TipoPagamento string    `json:"tipo_pagamento"`
	DecimoBruto   string    `json:"decimo_bruto"`
	TaxaPercent   string    `json:"taxa_percentual"`
	ValorRetido   string    `json:"valor_retido"`
	DecimoLiquido string    `json:"decimo_liquido"`
	OccurredAt    time.Time `json:"occurred_at"`
}
