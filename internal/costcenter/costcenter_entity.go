package costcenter

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CostCenter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Codigo    string    `gorm:"type:varchar(20);not null"`
	Descricao string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CostCenter) TableName() string {
	return "centros_custo"
}
