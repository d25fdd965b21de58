package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is one node of the plano de contas. ContaPai references the
// parent node's codigo_contas; empty means a root account.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index"`
	CodigoContas string    `gorm:"type:varchar(30);not null"`
	NomeConta    string    `gorm:"type:varchar(150);not null"`
	TipoConta    string    `gorm:"type:varchar(30);not null"`
	Nivel        string    `gorm:"type:varchar(5);not null"`
	ContaPai     string    `gorm:"type:varchar(30)"`
	Descricao    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Account) TableName() string {
	return "plano_contas"
}
