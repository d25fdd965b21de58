package union

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Union struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Nome      string    `gorm:"type:varchar(150);not null"`
	Telefone  string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Union) TableName() string {
	return "sindicatos"
}
