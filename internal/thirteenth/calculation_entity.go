package thirteenth

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ThirteenthCalculation is the persisted record of one calculation.
// Rows are append-only; recalculating writes a new row.
type ThirteenthCalculation struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;index"`
	Salario          decimal.Decimal `gorm:"type:numeric(12,2)"`
	MesesTrabalhados int
	TipoPagamento    string          `gorm:"type:varchar(10)"`
	DecimoBruto      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxaPercentual   decimal.Decimal `gorm:"type:numeric(5,2)"`
	ValorRetido      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DecimoLiquido    decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt        time.Time
}

func (ThirteenthCalculation) TableName() string {
	return "calculos_decimo_terceiro"
}
