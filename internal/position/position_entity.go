package position

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Position is the cargo record: a job title with its base salary.
type Position struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID       `gorm:"type:uuid;index"`
	Cargo     string          `gorm:"type:varchar(100);not null"`
	Salario   decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Position) TableName() string {
	return "cargos"
}
