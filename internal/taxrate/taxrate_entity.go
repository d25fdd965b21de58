package taxrate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRate is one aliquota row: a bracket of a progressive table for a
// tax type, valid between DataInicio and DataFim. FaixaMax nil marks
// the open-ended top bracket.
type TaxRate struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID        `gorm:"type:uuid;index"`
	TipoImposto string           `gorm:"type:varchar(30);not null;index"`
	FaixaMin    decimal.Decimal  `gorm:"type:numeric(12,2)"`
	FaixaMax    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Percentual  decimal.Decimal  `gorm:"type:numeric(5,2)"`
	DataInicio  time.Time        `gorm:"type:date"`
	DataFim     time.Time        `gorm:"type:date"`
	Descricao   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (TaxRate) TableName() string {
	return "aliquotas"
}
